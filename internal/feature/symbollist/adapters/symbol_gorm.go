// Package adapters はsymbollistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"market_movers/internal/feature/symbollist/domain/entity"
	"market_movers/internal/feature/symbollist/usecase"
)

// symbolGorm はSymbolRepositoryインターフェースのgorm実装です。SQLiteとPostgreSQLの両方で動作します。
type symbolGorm struct {
	db *gorm.DB
}

var _ usecase.SymbolRepository = (*symbolGorm)(nil)

// NewSymbolRepository は指定されたDB接続でsymbolGormリポジトリの新しいインスタンスを生成します。
func NewSymbolRepository(db *gorm.DB) *symbolGorm {
	return &symbolGorm{db: db}
}

// ListActive はsort_key順にすべてのアクティブな銘柄を返します。
func (r *symbolGorm) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	var symbols []entity.Symbol
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Order("code ASC").
		Find(&symbols).Error; err != nil {
		return nil, err
	}
	return symbols, nil
}

// SeedIfEmpty はテーブルが空の場合のみ初期銘柄を投入します。
// 既存のコードと衝突した行は無視されます。投入した件数を返します。
func (r *symbolGorm) SeedIfEmpty(ctx context.Context, symbols []entity.Symbol) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Symbol{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 || len(symbols) == 0 {
		return 0, nil
	}

	rows := make([]entity.Symbol, len(symbols))
	copy(rows, symbols)
	for i := range rows {
		rows[i].ID = 0 // 採番はDBに任せる
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "code"}}, DoNothing: true}).
		Create(&rows)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
