package handler

import (
	"net/http"

	"garcolderp/internal/apierror"
	"garcolderp/internal/dto"
	"garcolderp/internal/service"

	"github.com/gin-gonic/gin"
)

type ComprasHandler struct{ svc service.CompraService }

func NewComprasHandler(svc service.CompraService) *ComprasHandler {
	return &ComprasHandler{svc: svc}
}

func (h *ComprasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ComprasHandler) Listar(c *gin.Context) {
	var filter dto.CompraFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ComprasHandler) Obtener(c *gin.Context) {
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

func (h *ComprasHandler) Eliminar(c *gin.Context) {
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

func (h *ComprasHandler) CrearAbono(c *gin.Context) {
	compraID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CrearAbonoCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearAbono(c.Request.Context(), compraID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ComprasHandler) ListarAbonos(c *gin.Context) {
	compraID, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListarAbonos(c.Request.Context(), compraID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ComprasHandler) EliminarAbono(c *gin.Context) {
	compraID, ok := parseID(c, "id")
	if !ok {
		return
	}
	abonoID, ok := parseID(c, "abono_id")
	if !ok {
		return
	}
	if err := h.svc.EliminarAbono(c.Request.Context(), compraID, abonoID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
