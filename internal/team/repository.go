package team

import (
	"errors"
	"fmt"

	"github.com/kantodex/gen1-team-backend/internal/platform/database"
	"gorm.io/gorm"
)

// ErrTeamNotFound 表示UUID没有对应的队伍。
var ErrTeamNotFound = errors.New("找不到对应的队伍")

// ErrMemberNotFound 表示队伍中没有对应的成员。
var ErrMemberNotFound = errors.New("找不到对应的队伍成员")

// 队伍与成员是用户可变数据，与只读的种族/招式数据不同，
// 这里的仓库直接读写数据库，不做内存缓存。

func createTeam(t *Team) error {
	if err := database.DB.Create(t).Error; err != nil {
		return fmt.Errorf("创建队伍失败: %w", err)
	}
	return nil
}

func teamByUUID(uuid string) (*Team, error) {
	var t Team
	err := database.DB.Preload("Members").Where("uuid = ?", uuid).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("队伍 %s: %w", uuid, ErrTeamNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("查询队伍失败: %w", err)
	}
	return &t, nil
}

func allTeams() ([]Team, error) {
	var teams []Team
	if err := database.DB.Preload("Members").Order("id asc").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("查询队伍列表失败: %w", err)
	}
	return teams, nil
}

func saveTeam(t *Team) error {
	if err := database.DB.Save(t).Error; err != nil {
		return fmt.Errorf("更新队伍失败: %w", err)
	}
	return nil
}

// deleteTeam 删除队伍并级联删除其全部成员
func deleteTeam(t *Team) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", t.ID).Delete(&Member{}).Error; err != nil {
			return fmt.Errorf("删除队伍成员失败: %w", err)
		}
		if err := tx.Delete(t).Error; err != nil {
			return fmt.Errorf("删除队伍失败: %w", err)
		}
		return nil
	})
}

func memberCount(teamID uint) (int64, error) {
	var count int64
	if err := database.DB.Model(&Member{}).Where("team_id = ?", teamID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("统计队伍成员数失败: %w", err)
	}
	return count, nil
}

func createMember(m *Member) error {
	if err := database.DB.Create(m).Error; err != nil {
		return fmt.Errorf("创建队伍成员失败: %w", err)
	}
	return nil
}

func memberByID(teamID, memberID uint) (*Member, error) {
	var m Member
	err := database.DB.Where("id = ? AND team_id = ?", memberID, teamID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("成员 %d: %w", memberID, ErrMemberNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("查询队伍成员失败: %w", err)
	}
	return &m, nil
}

func saveMember(m *Member) error {
	if err := database.DB.Save(m).Error; err != nil {
		return fmt.Errorf("更新队伍成员失败: %w", err)
	}
	return nil
}

func deleteMember(m *Member) error {
	if err := database.DB.Delete(m).Error; err != nil {
		return fmt.Errorf("删除队伍成员失败: %w", err)
	}
	return nil
}
