package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/navtrack/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

// route documents are bounded, a megabyte covers even intercontinental
// routes with generous turn tables.
const maxDocumentBytes = 1 << 20

type trackingAPI struct {
	navigationService NavigationService
	log               *zap.Logger
}

func New(navigationService NavigationService, log *zap.Logger) *trackingAPI {
	return &trackingAPI{
		navigationService: navigationService,
		log:               log,
	}
}

func (api *trackingAPI) Routes(group *helper.RouteGroup) {
	group.POST("/routes", api.createSession)
	group.GET("/routes/:id", api.getState)
	group.DELETE("/routes/:id", api.dropSession)
}

func (api *trackingAPI) createSession(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	document, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes+1))
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
	if len(document) == 0 {
		api.BadRequestResponse(w, r, errors.New("request body must contain a route document"))
		return
	}
	if len(document) > maxDocumentBytes {
		api.BadRequestResponse(w, r, errors.New("route document exceeds the size limit"))
		return
	}

	mode := r.URL.Query().Get("mode")
	if mode != "" && mode != "vehicle" && mode != "pedestrian" {
		api.BadRequestResponse(w, r, errors.New("mode must be vehicle or pedestrian"))
		return
	}

	summary, err := api.navigationService.CreateSession(document, mode)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusCreated, envelope{"data": NewSessionResponse(summary)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *trackingAPI) getState(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	id := p.ByName("id")
	if id == "" {
		api.BadRequestResponse(w, r, errors.New("session id is required"))
		return
	}

	update, err := api.navigationService.GetState(id)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewTrackingUpdateResponse(update)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *trackingAPI) dropSession(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	id := p.ByName("id")
	if id == "" {
		api.BadRequestResponse(w, r, errors.New("session id is required"))
		return
	}

	if err := api.navigationService.DropSession(id); err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": fmt.Sprintf("session %s dropped", id)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func validateRequest(req interface{}) []error {
	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		return translateError(err, trans)
	}
	return nil
}
