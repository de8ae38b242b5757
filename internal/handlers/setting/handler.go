package setting

import (
	"marketplace/infras/otel"
	"marketplace/internal/domains/setting/model/dto"
	"marketplace/internal/domains/setting/service"
	"marketplace/shared/constant"
	"marketplace/shared/validator"
	"marketplace/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const requestParamKey = "key"

type Handler struct {
	service service.Setting
	otel    otel.Otel
}

func New(service service.Setting, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSettings)
		routerGroup.Put("/{key}", handler.SetSetting)
	})
}

// GetSettings lists the stored runtime settings.
// @Summary Get settings
// @Tags Setting
// @Produce json
// @Success 200 {object} response.Data[[]dto.SettingResponse]
// @Failure 500 {object} response.Error
// @Router /v1/settings [get]
// @Security BearerAuth
func (handler *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	settings, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get settings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, settings)
}

// SetSetting overrides one runtime setting.
// @Summary Set a setting
// @Tags Setting
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param request body dto.SetRequest true "Set Request"
// @Success 200 {object} response.Data[dto.SettingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/settings/{key} [put]
// @Security BearerAuth
func (handler *Handler) SetSetting(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetSetting")
	defer scope.End()

	req := dto.SetRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	setting, err := handler.service.Set(ctx, chi.URLParam(r, requestParamKey), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set setting")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Setting updated")

	response.WithJSON(w, http.StatusOK, setting)
}
