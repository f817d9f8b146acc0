package handler

import (
	"github.com/gin-gonic/gin"

	"smat.com/campusapi/internal/entity"
	"smat.com/campusapi/internal/modules/community/dto"
	community "smat.com/campusapi/internal/modules/community/service"
	"smat.com/campusapi/pkg/response"
	"smat.com/campusapi/pkg/validator"
)

type CommunityHandler struct {
	service community.CommunityService
}

func NewCommunityHandler(service community.CommunityService) *CommunityHandler {
	return &CommunityHandler{service: service}
}

func (h *CommunityHandler) GetAllPosts(c *gin.Context) {
	var req dto.ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	posts, err := h.service.AllPosts(c.Request.Context(), req.Writer)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	response.List(c, posts)
}

func (h *CommunityHandler) GetPostsByCategory(c *gin.Context) {
	var req dto.PostsByCategoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	posts, err := h.service.PostsByCategory(c.Request.Context(), entity.Category(req.Category))
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	response.List(c, posts)
}

func (h *CommunityHandler) GetRecentPosts(c *gin.Context) {
	posts, err := h.service.RecentPosts(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	response.List(c, posts)
}

func (h *CommunityHandler) SearchPosts(c *gin.Context) {
	var req dto.SearchPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	posts, err := h.service.SearchPosts(c.Request.Context(), req.Q)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	response.List(c, posts)
}
