package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"news-comments/domain"
	"news-comments/internal/rest/request"
	"news-comments/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

const (
	DefaultPageLimit = 20
	PageMinLimit     = 1
	PageMaxLimit     = 100
)

// CommentHandler  represent the httphandler for comment
type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("comment_status", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseStatus(fl.Field().String())
			return err == nil
		})
	}
}

// FetchByNews returns the approved comment thread of one news item.
func (h *CommentHandler) FetchByNews(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	newsID := int64(idP)

	ctx := c.Request.Context()
	comments, err := h.Service.FetchByNews(ctx, newsID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": response.NewCommentListFromDomain(comments)})
}

// Create stores a new comment; it always enters moderation as pending.
func (h *CommentHandler) Create(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.CreateComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	req.NewsID = int64(idP)

	ctx := c.Request.Context()
	if req.ParentID != nil {
		// Replies may only target a root comment of the same news item.
		parent, err := h.Service.GetByID(ctx, *req.ParentID)
		if err != nil || parent.NewsID != req.NewsID || parent.ParentID != nil {
			c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
			return
		}
	}

	comment := req.ToDomain()
	if err := h.Service.Create(ctx, &comment); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": response.NewCommentFromDomain(&comment)})
}

// GetByID returns a single comment for the admin view.
func (h *CommentHandler) GetByID(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	ctx := c.Request.Context()
	comment, err := h.Service.GetByID(ctx, int64(idP))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": response.NewCommentFromDomain(comment)})
}

// Update overwrites the comment text and, when given, its moderation status.
func (h *CommentHandler) Update(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.UpdateComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	var status *domain.Status
	if req.Status != nil {
		parsed, err := domain.ParseStatus(*req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
			return
		}
		status = &parsed
	}

	ctx := c.Request.Context()
	comment, err := h.Service.Update(ctx, int64(idP), req.Text, status)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": response.NewCommentFromDomain(comment)})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.Delete(ctx, int64(idP)); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// Fetch is the flat admin listing over all statuses.
func (h *CommentHandler) Fetch(c *gin.Context) {
	limit, offset := pageParams(c)

	ctx := c.Request.Context()
	comments, total, err := h.Service.Fetch(ctx, limit, offset)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"comments": response.NewCommentListFromDomain(comments),
		"total":    total,
	})
}

// Search filters the admin listing by text substring, news id and status.
func (h *CommentHandler) Search(c *gin.Context) {
	var req request.SearchComments
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	if req.Limit < PageMinLimit || req.Limit > PageMaxLimit {
		req.Limit = DefaultPageLimit
	}

	ctx := c.Request.Context()
	comments, total, err := h.Service.Search(ctx, req.ToFilter(), req.Limit, req.Offset)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"comments": response.NewCommentListFromDomain(comments),
		"total":    total,
	})
}

func pageParams(c *gin.Context) (limit, offset int64) {
	limitP, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limitP < PageMinLimit || limitP > PageMaxLimit {
		limitP = DefaultPageLimit
	}
	offsetP, err := strconv.Atoi(c.Query("offset"))
	if err != nil || offsetP < 0 {
		offsetP = 0
	}
	return int64(limitP), int64(offsetP)
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch err {
	case domain.ErrInternalServerError:
		return http.StatusInternalServerError
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrConflict:
		return http.StatusConflict
	case domain.ErrBadParamInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
