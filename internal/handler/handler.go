package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GulizarHanum/Birthday/internal/logging"
	"github.com/GulizarHanum/Birthday/internal/service"
	view "github.com/GulizarHanum/Birthday/pkg/model"
)

// handler serves the REST API of the birthday service.
type handler struct {
	service *service.Service
}

// SetupHttpRouter initializes the REST API router and registers all endpoints. If
// requestLogging is false then requests are not logged.
func SetupHttpRouter(svc *service.Service, requestLogging bool) *gin.Engine {
	router := gin.New()
	if requestLogging {
		router.Use(logging.RequestLogger(log.Logger))
	}
	router.Use(gin.Recovery())

	h := &handler{service: svc}
	router.GET("/health", health)
	birthdays := router.Group("/v1/birthdays")
	birthdays.GET("/list", h.listAll)
	birthdays.GET("/upcoming", h.listUpcoming)
	birthdays.GET("/:id", h.getByID)
	birthdays.POST("", h.add)
	birthdays.PUT("", h.edit)
	birthdays.DELETE("", h.deleteByID)
	return router
}

// health responds with OK as long as the process serves requests.
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// listAll responds with the list of all birthdays as JSON.
//
// Example REST API call:
//
//	> curl http://localhost:8080/v1/birthdays/list
func (h *handler) listAll(c *gin.Context) {
	birthdays, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, birthdays)
}

// listUpcoming responds with the birthdays of the next 14 days, today included.
//
// Example REST API call:
//
//	> curl http://localhost:8080/v1/birthdays/upcoming
func (h *handler) listUpcoming(c *gin.Context) {
	birthdays, err := h.service.ListUpcoming(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, birthdays)
}

// getByID responds with the birthday whose id matches the id parameter of the request URL. If
// there is no such birthday then the response is an empty JSON object.
//
// Example REST API call:
//
//	> curl http://localhost:8080/v1/birthdays/56
func (h *handler) getByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid id parameter"})
		return
	}
	birthday, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, birthday)
}

// add stores the birthday specified in the request's JSON. It responds with the list of all
// birthdays including the new one.
//
// Example REST API call:
//
//	> curl http://localhost:8080/v1/birthdays --request "POST" --include --header "Content-Type: application/json" --data '{"name": "Alex", "date": "2000-01-01", "role": "FRIEND"}'
func (h *handler) add(c *gin.Context) {
	var submitted view.Birthday
	if err := c.ShouldBindJSON(&submitted); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	if err := h.service.Add(c.Request.Context(), submitted); err != nil {
		respondError(c, err)
		return
	}
	h.listAll(c)
}

// edit replaces name, date, role and photo of the birthday whose id is given in the request's
// JSON, and responds with the new version of the birthday. Fields missing in the JSON are not
// kept: a request without photo removes the stored photo.
//
// Example REST API call:
//
//	> curl http://localhost:8080/v1/birthdays --request "PUT" --include --header "Content-Type: application/json" --data '{"id": 56, "name": "Alex", "date": "2000-01-01", "role": "FAMILY"}'
func (h *handler) edit(c *gin.Context) {
	var submitted view.Birthday
	if err := c.ShouldBindJSON(&submitted); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	birthday, err := h.service.Edit(c.Request.Context(), submitted)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, birthday)
}

// deleteByID deletes the birthday whose id matches the id URL parameter. It responds with an
// empty body.
//
// Example REST API call:
//
//	> curl "http://localhost:8080/v1/birthdays?id=56" --request "DELETE"
func (h *handler) deleteByID(c *gin.Context) {
	var id int64
	if param := c.Query("id"); param != "" {
		var err error
		id, err = strconv.ParseInt(param, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid id parameter"})
			return
		}
	}
	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// respondError translates an error of the service into an HTTP response. Errors caused by the
// request carry their message to the client; anything else is logged and hidden.
func respondError(c *gin.Context, err error) {
	var serviceErr *service.Error
	if errors.As(err, &serviceErr) {
		status := http.StatusBadRequest
		if serviceErr.Kind == service.KindNotFound {
			status = http.StatusNotFound
		}
		c.AbortWithStatusJSON(status, gin.H{"message": serviceErr.Message})
		return
	}
	zerolog.Ctx(c.Request.Context()).Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("request failed")
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}
