package person

import (
	"fmt"
	"net/http"
	"strconv"

	"contactbook/api/ctxutil"
	"contactbook/api/middleware"
	"contactbook/api/response"
	personapp "contactbook/application/person"
	"contactbook/application/result"

	"github.com/gin-gonic/gin"
)

const basePath = "/api/v1/people"

// Controller People controller
type Controller struct {
	service *personapp.ApplicationService
}

func NewController(service *personapp.ApplicationService) *Controller {
	return &Controller{service: service}
}

// RegisterRoutes Register people routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	people := router.Group("/people", middleware.PersonRequestLoggingMiddleware())
	{
		people.GET("", c.ListPeople)
		people.GET("/:id", c.GetPerson)
		people.GET("/v2", c.ListPeopleV2)
		people.GET("/v2/:id", c.GetPersonV2)
		people.POST("", c.CreatePerson)
		people.PUT("/:id", c.EditPerson)
		people.PUT("/update-home-address", c.UpdateHomeAddress)
		people.PUT("/update-business-address", c.UpdateBusinessAddress)
		people.DELETE("/:id", c.DeletePerson)
	}
}

func (c *Controller) ListPeople(ctx *gin.Context) {
	var q personapp.ListPeopleQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.HandleError(ctx, err, "Invalid query parameters", http.StatusBadRequest)
		return
	}

	page, err := c.service.ListPeopleWithPagination(ctxutil.FromGin(ctx), q)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, page)
}

// ListPeopleV2 与 ListPeople 相同，走读模型
func (c *Controller) ListPeopleV2(ctx *gin.Context) {
	var q personapp.ListPeopleQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.HandleError(ctx, err, "Invalid query parameters", http.StatusBadRequest)
		return
	}

	page, err := c.service.ListPeopleFromReadModel(ctxutil.FromGin(ctx), q)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, page)
}

func (c *Controller) GetPerson(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	dto, err := c.service.GetPerson(ctxutil.FromGin(ctx), personapp.GetPersonQuery{ID: id})
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	if dto == nil {
		response.HandleNotFound(ctx, notFoundMessage(id))
		return
	}
	response.HandleSuccess(ctx, dto)
}

func (c *Controller) GetPersonV2(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	dto, err := c.service.GetPersonFromReadModel(ctxutil.FromGin(ctx), personapp.GetPersonQuery{ID: id})
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	if dto == nil {
		response.HandleNotFound(ctx, notFoundMessage(id))
		return
	}
	response.HandleSuccess(ctx, dto)
}

func (c *Controller) CreatePerson(ctx *gin.Context) {
	var cmd personapp.CreatePersonCommand
	if err := ctx.ShouldBindJSON(&cmd); err != nil {
		response.HandleError(ctx, err, "Invalid request body", http.StatusBadRequest)
		return
	}

	res, err := c.service.CreatePerson(ctxutil.FromGin(ctx), cmd)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	if !res.Succeeded() {
		response.HandleFailure(ctx, res.Untyped())
		return
	}
	id := res.Data()
	response.HandleCreated(ctx, fmt.Sprintf("%s/%d", basePath, id), id)
}

func (c *Controller) EditPerson(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var cmd personapp.EditPersonCommand
	if err := ctx.ShouldBindJSON(&cmd); err != nil {
		response.HandleError(ctx, err, "Invalid request body", http.StatusBadRequest)
		return
	}
	if cmd.ID != id {
		response.HandleError(ctx, fmt.Errorf("path id %d, body id %d", id, cmd.ID),
			"Path ID does not match the request body ID.", http.StatusBadRequest)
		return
	}

	res, err := c.service.EditPerson(ctxutil.FromGin(ctx), cmd)
	c.writeResult(ctx, res, err)
}

func (c *Controller) UpdateHomeAddress(ctx *gin.Context) {
	c.updateAddress(ctx, "Home")
}

func (c *Controller) UpdateBusinessAddress(ctx *gin.Context) {
	c.updateAddress(ctx, "Business")
}

func (c *Controller) updateAddress(ctx *gin.Context, addressType string) {
	var cmd personapp.UpdateAddressCommand
	if err := ctx.ShouldBindJSON(&cmd); err != nil {
		response.HandleError(ctx, err, "Invalid request body", http.StatusBadRequest)
		return
	}
	cmd.AddressType = addressType

	res, err := c.service.UpdateAddress(ctxutil.FromGin(ctx), cmd)
	c.writeResult(ctx, res, err)
}

func (c *Controller) DeletePerson(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	res, err := c.service.DeletePerson(ctxutil.FromGin(ctx), personapp.DeletePersonCommand{ID: id})
	c.writeResult(ctx, res, err)
}

// writeResult answers 204 on success.
func (c *Controller) writeResult(ctx *gin.Context, res result.Result, err error) {
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	if !res.Succeeded() {
		response.HandleFailure(ctx, res)
		return
	}
	response.HandleNoContent(ctx)
}

func pathID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		response.HandleError(ctx, err, "Invalid person ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func notFoundMessage(id int64) string {
	return fmt.Sprintf("Person with ID %d was not found", id)
}
