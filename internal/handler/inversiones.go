package handler

import (
	"net/http"

	"garcolderp/internal/dto"
	"garcolderp/internal/service"

	"github.com/gin-gonic/gin"
)

type InversionesHandler struct{ svc service.InversionService }

func NewInversionesHandler(svc service.InversionService) *InversionesHandler {
	return &InversionesHandler{svc: svc}
}

func (h *InversionesHandler) Crear(c *gin.Context) {
	var req dto.CrearInversionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *InversionesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InversionesHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InversionesHandler) AgregarSaldo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AgregarSaldoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AgregarSaldo(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InversionesHandler) Retirar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.RetirarInversionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Retirar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InversionesHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
