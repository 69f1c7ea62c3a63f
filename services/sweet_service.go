package services

import (
	"errors"
	"gin-sweetshop/constants"
	"gin-sweetshop/dto"
	"gin-sweetshop/models"
	"gin-sweetshop/repositories"
)

type ISweetService interface {
	FindAll() (*[]models.Sweet, error)
	Search(query dto.SearchSweetQuery) (*[]models.Sweet, error)
	Create(createSweetInput dto.CreateSweetInput) (*models.Sweet, error)
	Purchase(sweetID uint, quantity int) (*models.Sweet, error)
	Restock(sweetID uint, quantity int) (*models.Sweet, error)
	Update(sweetID uint, updateSweetInput dto.UpdateSweetInput) (*models.Sweet, error)
	Delete(sweetID uint) error
}

type SweetService struct {
	repository repositories.ISweetRepository
}

func NewSweetService(repository repositories.ISweetRepository) ISweetService {
	return &SweetService{repository: repository}
}

func (s *SweetService) FindAll() (*[]models.Sweet, error) {
	return s.repository.FindAll()
}

func (s *SweetService) Search(query dto.SearchSweetQuery) (*[]models.Sweet, error) {
	return s.repository.Search(query)
}

func (s *SweetService) Create(createSweetInput dto.CreateSweetInput) (*models.Sweet, error) {
	newSweet := models.Sweet{
		Name:     createSweetInput.Name,
		Category: createSweetInput.Category,
		Price:    createSweetInput.Price,
		Quantity: *createSweetInput.Quantity,
	}
	return s.repository.Create(newSweet)
}

func (s *SweetService) Purchase(sweetID uint, quantity int) (*models.Sweet, error) {
	return s.repository.DecrementQuantity(sweetID, quantity)
}

func (s *SweetService) Restock(sweetID uint, quantity int) (*models.Sweet, error) {
	if quantity <= 0 {
		return nil, errors.New(constants.ErrInvalidRestock)
	}
	return s.repository.IncrementQuantity(sweetID, quantity)
}

func (s *SweetService) Update(sweetID uint, updateSweetInput dto.UpdateSweetInput) (*models.Sweet, error) {
	updates := map[string]interface{}{}
	if updateSweetInput.Name != nil {
		updates["name"] = *updateSweetInput.Name
	}
	if updateSweetInput.Category != nil {
		updates["category"] = *updateSweetInput.Category
	}
	if updateSweetInput.Price != nil {
		updates["price"] = *updateSweetInput.Price
	}
	if updateSweetInput.Quantity != nil {
		updates["quantity"] = *updateSweetInput.Quantity
	}

	if len(updates) == 0 {
		return s.repository.FindById(sweetID)
	}
	return s.repository.Update(sweetID, updates)
}

func (s *SweetService) Delete(sweetID uint) error {
	return s.repository.Delete(sweetID)
}
