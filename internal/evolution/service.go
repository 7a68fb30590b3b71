package evolution

import (
	"fmt"

	"github.com/kantodex/gen1-team-backend/internal/move"
	"github.com/kantodex/gen1-team-backend/internal/platform/database"
	"github.com/kantodex/gen1-team-backend/internal/pokemon"
)

// --- Service-Level Data Transfer Objects (DTOs) ---

// LineageMoveDTO 是进化链招式表API所需的完整数据
type LineageMoveDTO struct {
	MoveID       uint
	Name         string
	Type         string
	Power        *int
	Accuracy     int
	PP           int
	Level        *int
	SourceNumber int
	SourceName   string
	Inherited    bool
}

// StageDTO 是进化链上的一个环节
type StageDTO struct {
	Number int
	Name   string
}

// SuccessorDTO 是一条进化去向及其方式元数据
type SuccessorDTO struct {
	Number       int
	Name         string
	Method       Method
	MinLevel     *int
	RequiredItem *string
	Trade        bool
}

// ChainDTO 是进化信息API返回给控制器的数据包
type ChainDTO struct {
	Number       int
	Name         string
	Predecessors []StageDTO
	Successors   []SuccessorDTO
}

// ResolveLineage 返回某个种族合并进化链后的原始招式表。
// Redis健康时优先读缓存，否则回退到解析器即时计算。
func ResolveLineage(number int) ([]LineageMove, error) {
	if globalResolver == nil {
		return nil, fmt.Errorf("进化模块尚未初始化")
	}

	if database.IsRedisHealthy() {
		if lineage, ok := cachedLineage(number); ok {
			return lineage, nil
		}
	}
	return globalResolver.MovesWithLineage(number)
}

// GetLineageMoves 返回带招式详情与来源名称的进化链招式表。
func GetLineageMoves(number int) ([]LineageMoveDTO, error) {
	lineage, err := ResolveLineage(number)
	if err != nil {
		return nil, err
	}

	pokemonRepo := pokemon.GlobalRepository()
	moveRepo := move.GlobalRepository()

	out := make([]LineageMoveDTO, 0, len(lineage))
	for _, lm := range lineage {
		moveInfo, err := moveRepo.InfoByID(lm.MoveID)
		if err != nil {
			// 学习表引用了不存在的招式，属于数据完整性问题
			return nil, err
		}
		sourceInfo, err := pokemonRepo.InfoByNumber(lm.SourceNumber)
		if err != nil {
			return nil, err
		}
		out = append(out, LineageMoveDTO{
			MoveID:       lm.MoveID,
			Name:         moveInfo.Name,
			Type:         moveInfo.Type,
			Power:        moveInfo.Power,
			Accuracy:     moveInfo.Accuracy,
			PP:           moveInfo.PP,
			Level:        lm.Level,
			SourceNumber: lm.SourceNumber,
			SourceName:   sourceInfo.Name,
			Inherited:    lm.SourceNumber != number,
		})
	}
	return out, nil
}

// GetChain 返回某个种族的进化信息：全部祖先（由近及远）与直接进化去向。
func GetChain(number int) (*ChainDTO, error) {
	if globalGraph == nil {
		return nil, fmt.Errorf("进化模块尚未初始化")
	}

	repo := pokemon.GlobalRepository()
	info, err := repo.InfoByNumber(number)
	if err != nil {
		return nil, err
	}

	ancestors, err := globalGraph.PredecessorsOf(number)
	if err != nil {
		return nil, err
	}

	chain := &ChainDTO{Number: number, Name: info.Name}
	for _, a := range ancestors {
		aInfo, err := repo.InfoByNumber(a)
		if err != nil {
			return nil, err
		}
		chain.Predecessors = append(chain.Predecessors, StageDTO{Number: a, Name: aInfo.Name})
	}
	for _, link := range globalGraph.SuccessorsOf(number) {
		sInfo, err := repo.InfoByNumber(link.ToNumber)
		if err != nil {
			return nil, err
		}
		chain.Successors = append(chain.Successors, SuccessorDTO{
			Number:       link.ToNumber,
			Name:         sInfo.Name,
			Method:       link.Method,
			MinLevel:     link.MinLevel,
			RequiredItem: link.RequiredItem,
			Trade:        link.Trade,
		})
	}
	return chain, nil
}
