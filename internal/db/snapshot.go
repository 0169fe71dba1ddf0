package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot 在固定键下保存整份序列化的内容状态。
// 每次内容变更都会整体覆盖 value，不做增量写入。
type Snapshot struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

// TableName 自定义表名以保持命名一致。
func (Snapshot) TableName() string {
	return "snapshots"
}

// SnapshotKeyCMSState 是内容快照的固定槽位键。
const SnapshotKeyCMSState = "cms_state"

// SnapshotStore 把单条快照记录暴露为内容仓库的持久化端口。
type SnapshotStore struct {
	db  *gorm.DB
	key string
}

// NewSnapshotStore 构造指向给定槽位键的 SnapshotStore。
func NewSnapshotStore(gdb *gorm.DB, key string) *SnapshotStore {
	return &SnapshotStore{db: gdb, key: key}
}

// Save 整体覆盖快照记录。
func (s *SnapshotStore) Save(raw []byte) error {
	record := Snapshot{Key: s.key, Value: string(raw)}
	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      string(raw),
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&record).Error; err != nil {
		return fmt.Errorf("save snapshot %s: %w", s.key, err)
	}
	return nil
}

// Load 读取快照记录；槽位为空时返回 (nil, nil)。
func (s *SnapshotStore) Load() ([]byte, error) {
	var record Snapshot
	if err := s.db.Where("key = ?", s.key).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load snapshot %s: %w", s.key, err)
	}
	return []byte(record.Value), nil
}

// Reset 删除快照记录。
func (s *SnapshotStore) Reset() error {
	if err := s.db.Unscoped().Where("key = ?", s.key).Delete(&Snapshot{}).Error; err != nil {
		return fmt.Errorf("reset snapshot %s: %w", s.key, err)
	}
	return nil
}
