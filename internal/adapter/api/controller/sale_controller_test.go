package controller

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/repository"
	saledomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/sale"
)

func saleRouter(c *SaleController) *gin.Engine {
	r := gin.New()
	r.PUT("/vendas/:id", c.Update)
	r.DELETE("/vendas/:id", c.Delete)
	return r
}

func TestSaleController_Update_CancelDispatchesEmail(t *testing.T) {
	cancelled := &saledomain.Sale{
		ID:          "v1",
		ClientID:    "c1",
		Date:        time.Now(),
		Status:      saledomain.StatusCancelled,
		ClientName:  "Maria",
		ClientEmail: "maria@example.com",
	}
	repo := &fakeSaleRepo{
		findByID: func(id string) (*saledomain.Sale, error) {
			return &saledomain.Sale{ID: id, Status: saledomain.StatusCompleted}, nil
		},
		cancel: func(id string) (*saledomain.Sale, error) { return cancelled, nil },
	}
	m := newRecordingMailer()
	ctrl := NewSaleController(repo, &fakeClientRepo{}, m, nopLogger{})

	w := performRequest(saleRouter(ctrl), http.MethodPut, "/vendas/v1", `{"status":"cancelada"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	mail := m.wait(t)
	assert.Equal(t, "maria@example.com", mail.To)
	assert.Equal(t, "Cancelamento de compra", mail.Subject)
	assert.Contains(t, mail.Body, "Maria")
	assert.Contains(t, mail.Body, "cancelada")
}

func TestSaleController_Update_WithoutCancelNoEmail(t *testing.T) {
	repo := &fakeSaleRepo{
		findByID: func(id string) (*saledomain.Sale, error) {
			return &saledomain.Sale{ID: id, Status: saledomain.StatusCompleted, ClientEmail: "maria@example.com"}, nil
		},
	}
	m := newRecordingMailer()
	ctrl := NewSaleController(repo, &fakeClientRepo{}, m, nopLogger{})

	w := performRequest(saleRouter(ctrl), http.MethodPut, "/vendas/v1", `{"forma_pagamento":"pix"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	m.assertNone(t)
}

func TestSaleController_Delete_DispatchesEmail(t *testing.T) {
	repo := &fakeSaleRepo{
		remove: func(id string) (*saledomain.Sale, error) {
			return &saledomain.Sale{
				ID:          id,
				Date:        time.Now(),
				Status:      saledomain.StatusCompleted,
				ClientName:  "João",
				ClientEmail: "joao@example.com",
			}, nil
		},
	}
	m := newRecordingMailer()
	ctrl := NewSaleController(repo, &fakeClientRepo{}, m, nopLogger{})

	w := performRequest(saleRouter(ctrl), http.MethodDelete, "/vendas/v1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	mail := m.wait(t)
	assert.Equal(t, "joao@example.com", mail.To)
	assert.Equal(t, "Cancelamento de compra", mail.Subject)
}

func TestSaleController_Delete_NotFoundNoEmail(t *testing.T) {
	repo := &fakeSaleRepo{
		remove: func(id string) (*saledomain.Sale, error) { return nil, repository.ErrSaleNotFound },
	}
	m := newRecordingMailer()
	ctrl := NewSaleController(repo, &fakeClientRepo{}, m, nopLogger{})

	w := performRequest(saleRouter(ctrl), http.MethodDelete, "/vendas/v1", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	m.assertNone(t)
}
