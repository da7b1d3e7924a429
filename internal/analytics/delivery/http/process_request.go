package http

import (
	"errors"
	"fmt"

	"social-analytics-srv/internal/model"
	pkgErrors "social-analytics-srv/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindQuery binds the query string into req and turns binding failures into
// 400-class errors naming the offending parameter.
func (h *handler) bindQuery(c *gin.Context, req any) error {
	err := c.ShouldBindQuery(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return pkgErrors.NewValidationError(fe.Field(), fmt.Sprintf("Invalid %s", fe.Field()))
	}
	return errInvalidQuery
}

// checkRange rejects a start bound after the end bound.
func checkRange(f model.PostFilter) error {
	if f.StartDate != nil && f.EndDate != nil && f.StartDate.After(*f.EndDate) {
		return errInvalidDateRange
	}
	return nil
}

type filterSource interface {
	toFilter() (model.PostFilter, error)
}

func (h *handler) processFilter(c *gin.Context, req filterSource) (model.PostFilter, error) {
	if err := h.bindQuery(c, req); err != nil {
		return model.PostFilter{}, err
	}
	f, err := req.toFilter()
	if err != nil {
		return model.PostFilter{}, errInvalidQuery
	}
	if err := checkRange(f); err != nil {
		return model.PostFilter{}, err
	}
	return f, nil
}

func (h *handler) processFilterRequest(c *gin.Context) (model.PostFilter, error) {
	var req filterReq
	return h.processFilter(c, &req)
}

func (h *handler) processListPostsRequest(c *gin.Context) (listPostsReq, model.PostFilter, error) {
	var req listPostsReq
	f, err := h.processFilter(c, &req)
	return req, f, err
}

func (h *handler) processSentimentDistributionRequest(c *gin.Context) (sentimentDistributionReq, model.PostFilter, error) {
	var req sentimentDistributionReq
	f, err := h.processFilter(c, &req)
	return req, f, err
}

func (h *handler) processDateRangeRequest(c *gin.Context) (model.PostFilter, error) {
	var req dateRangeReq
	return h.processFilter(c, &req)
}

func (h *handler) processInfluencersRequest(c *gin.Context) (influencersReq, model.PostFilter, error) {
	var req influencersReq
	f, err := h.processFilter(c, &req)
	return req, f, err
}

func (h *handler) processTimelineRequest(c *gin.Context) (model.PostFilter, error) {
	var req timelineReq
	return h.processFilter(c, &req)
}

func (h *handler) processKeywordFrequencyRequest(c *gin.Context) (keywordFrequencyReq, model.PostFilter, error) {
	var req keywordFrequencyReq
	f, err := h.processFilter(c, &req)
	return req, f, err
}
