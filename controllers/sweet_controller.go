package controllers

import (
	"gin-sweetshop/constants"
	"gin-sweetshop/dto"
	"gin-sweetshop/services"
	"gin-sweetshop/validations"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ISweetController interface {
	FindAll(ctx *gin.Context)
	Search(ctx *gin.Context)
	Create(ctx *gin.Context)
	Purchase(ctx *gin.Context)
	Restock(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type SweetController struct {
	service services.ISweetService
}

func NewSweetController(service services.ISweetService) ISweetController {
	return &SweetController{service: service}
}

func (c *SweetController) FindAll(ctx *gin.Context) {
	sweets, err := c.service.FindAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, sweets)
}

func (c *SweetController) Search(ctx *gin.Context) {
	var query dto.SearchSweetQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validations.Message(err)})
		return
	}

	sweets, err := c.service.Search(query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, sweets)
}

func (c *SweetController) Create(ctx *gin.Context) {
	var input dto.CreateSweetInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validations.Message(err)})
		return
	}

	newSweet, err := c.service.Create(input)
	if err != nil {
		log.Printf("Create sweet error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusCreated, newSweet)
}

func (c *SweetController) Purchase(ctx *gin.Context) {
	sweetID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	var input dto.StockInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validations.Message(err)})
		return
	}

	sweet, err := c.service.Purchase(uint(sweetID), input.Quantity)
	if err != nil {
		switch err.Error() {
		case constants.ErrSweetNotFound:
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrSweetNotFound})
		case constants.ErrInsufficientQuantity:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInsufficientQuantity})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}

	ctx.JSON(http.StatusOK, sweet)
}

func (c *SweetController) Restock(ctx *gin.Context) {
	sweetID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	var input dto.StockInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validations.Message(err)})
		return
	}

	sweet, err := c.service.Restock(uint(sweetID), input.Quantity)
	if err != nil {
		switch err.Error() {
		case constants.ErrSweetNotFound:
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrSweetNotFound})
		case constants.ErrInvalidRestock:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidRestock})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}

	ctx.JSON(http.StatusOK, sweet)
}

func (c *SweetController) Update(ctx *gin.Context) {
	sweetID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	var input dto.UpdateSweetInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validations.Message(err)})
		return
	}

	updatedSweet, err := c.service.Update(uint(sweetID), input)
	if err != nil {
		if err.Error() == constants.ErrSweetNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrSweetNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, updatedSweet)
}

func (c *SweetController) Delete(ctx *gin.Context) {
	sweetID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	err = c.service.Delete(uint(sweetID))
	if err != nil {
		if err.Error() == constants.ErrSweetNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrSweetNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Sweet deleted successfully"})
}
