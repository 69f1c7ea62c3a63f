package repositories

import (
	"errors"
	"gin-sweetshop/constants"
	"gin-sweetshop/dto"
	"gin-sweetshop/models"
	"strings"

	"gorm.io/gorm"
)

type ISweetRepository interface {
	FindAll() (*[]models.Sweet, error)
	FindById(sweetID uint) (*models.Sweet, error)
	Search(query dto.SearchSweetQuery) (*[]models.Sweet, error)
	Create(newSweet models.Sweet) (*models.Sweet, error)
	Update(sweetID uint, updates map[string]interface{}) (*models.Sweet, error)
	DecrementQuantity(sweetID uint, quantity int) (*models.Sweet, error)
	IncrementQuantity(sweetID uint, quantity int) (*models.Sweet, error)
	Delete(sweetID uint) error
}

type SweetRepository struct {
	db *gorm.DB
}

func NewSweetRepository(db *gorm.DB) ISweetRepository {
	return &SweetRepository{db: db}
}

func (r *SweetRepository) FindAll() (*[]models.Sweet, error) {
	var sweets []models.Sweet
	result := r.db.Order("created_at DESC").Find(&sweets)
	if result.Error != nil {
		return nil, result.Error
	}
	return &sweets, nil
}

func (r *SweetRepository) FindById(sweetID uint) (*models.Sweet, error) {
	var sweet models.Sweet
	result := r.db.First(&sweet, "id = ?", sweetID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New(constants.ErrSweetNotFound)
		}
		return nil, result.Error
	}
	return &sweet, nil
}

func (r *SweetRepository) Search(query dto.SearchSweetQuery) (*[]models.Sweet, error) {
	// LOWER + LIKE はSQLiteとPostgreSQLの両方で大文字小文字を無視できる
	tx := r.db.Model(&models.Sweet{})
	if query.Name != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query.Name)+"%")
	}
	if query.Category != "" {
		tx = tx.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(query.Category)+"%")
	}
	if query.MinPrice != nil {
		tx = tx.Where("price >= ?", *query.MinPrice)
	}
	if query.MaxPrice != nil {
		tx = tx.Where("price <= ?", *query.MaxPrice)
	}

	var sweets []models.Sweet
	result := tx.Order("created_at DESC").Find(&sweets)
	if result.Error != nil {
		return nil, result.Error
	}
	return &sweets, nil
}

func (r *SweetRepository) Create(newSweet models.Sweet) (*models.Sweet, error) {
	result := r.db.Create(&newSweet)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newSweet, nil
}

func (r *SweetRepository) Update(sweetID uint, updates map[string]interface{}) (*models.Sweet, error) {
	result := r.db.Model(&models.Sweet{}).
		Where("id = ?", sweetID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errors.New(constants.ErrSweetNotFound)
	}
	return r.FindById(sweetID)
}

// DecrementQuantity 条件付きUPDATEで在庫を減らす。
// 同一商品への同時購入でも quantity が負になることはない
func (r *SweetRepository) DecrementQuantity(sweetID uint, quantity int) (*models.Sweet, error) {
	result := r.db.Model(&models.Sweet{}).
		Where("id = ? AND quantity >= ?", sweetID, quantity).
		Update("quantity", gorm.Expr("quantity - ?", quantity))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// 存在しないのか在庫不足なのかを読み分ける
		if _, err := r.FindById(sweetID); err != nil {
			return nil, err
		}
		return nil, errors.New(constants.ErrInsufficientQuantity)
	}
	return r.FindById(sweetID)
}

func (r *SweetRepository) IncrementQuantity(sweetID uint, quantity int) (*models.Sweet, error) {
	result := r.db.Model(&models.Sweet{}).
		Where("id = ?", sweetID).
		Update("quantity", gorm.Expr("quantity + ?", quantity))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errors.New(constants.ErrSweetNotFound)
	}
	return r.FindById(sweetID)
}

func (r *SweetRepository) Delete(sweetID uint) error {
	result := r.db.Delete(&models.Sweet{}, "id = ?", sweetID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New(constants.ErrSweetNotFound)
	}
	return nil
}
