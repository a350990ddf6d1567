package http

import (
	"net/http"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
)

type ColorHandler struct {
	colorUsecase usecase.ColorUC
	logger       logger.Logger
}

func NewColorHandler(colorUsecase usecase.ColorUC, logger logger.Logger) *ColorHandler {
	return &ColorHandler{colorUsecase: colorUsecase, logger: logger}
}

type saveColorRequest struct {
	Name      string  `json:"name"`
	ColorCode *string `json:"colorCode"`
}

type colorResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	ColorCode *string    `json:"colorCode,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func toColorResponse(info *usecase.ColorInfo) colorResponse {
	return colorResponse{
		ID:        info.ID,
		Name:      info.Name,
		ColorCode: info.ColorCode,
		CreatedAt: info.CreatedAt,
		UpdatedAt: info.UpdatedAt,
	}
}

func (c *ColorHandler) createColor(w http.ResponseWriter, r *http.Request) {
	req, err := parseSaveColorRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	info, err := c.colorUsecase.CreateColor(r.Context(), req)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toColorResponse(info))
}

func (c *ColorHandler) updateColor(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	req, err := parseSaveColorRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	info, err := c.colorUsecase.UpdateColor(r.Context(), id, req)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toColorResponse(info))
}

func (c *ColorHandler) deleteColor(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := c.colorUsecase.DeleteColor(r.Context(), id); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "color deleted",
	})
}

func (c *ColorHandler) getColor(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	info, err := c.colorUsecase.GetColor(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toColorResponse(info))
}

func (c *ColorHandler) getColors(w http.ResponseWriter, r *http.Request) {
	infos, err := c.colorUsecase.GetColors(r.Context())
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]colorResponse, 0, len(infos))
	for i := range infos {
		result = append(result, toColorResponse(&infos[i]))
	}

	WriteSuccess(w, http.StatusOK, result)
}

func parseSaveColorRequest(r *http.Request) (*usecase.SaveColorReq, error) {
	var body saveColorRequest
	if err := decodeJSON(r, &body); err != nil {
		return nil, err
	}

	if body.Name == "" {
		return nil, e.ErrNameRequired
	}

	return &usecase.SaveColorReq{Name: body.Name, ColorCode: body.ColorCode}, nil
}
