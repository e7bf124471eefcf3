package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripval/libs/diff"
	"tripval/trip"
)

type errorsResponse struct {
	Errors trip.FieldErrors `json:"errors"`
}

type batchItem struct {
	Result *trip.TripResult `json:"result,omitempty"`
	Errors trip.FieldErrors `json:"errors,omitempty"`
}

type compareRequest struct {
	Left  trip.RawInput `json:"left"`
	Right trip.RawInput `json:"right"`
}

type fieldChange struct {
	Field string  `json:"field"`
	From  float64 `json:"from"`
	To    float64 `json:"to"`
}

type compareResponse struct {
	Left    trip.TripResult `json:"left"`
	Right   trip.TripResult `json:"right"`
	Changes []fieldChange   `json:"changes"`
}

// CalculateHandler handles POST /api/trip-value. Validation failures come
// back as 400 with the full accumulated field error list.
func CalculateHandler(c *gin.Context) {
	var raw trip.RawInput
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	in, errs := trip.Validate(raw)
	if errs != nil {
		c.JSON(http.StatusBadRequest, errorsResponse{Errors: errs})
		return
	}

	c.JSON(http.StatusOK, trip.Calculate(in))
}

// BatchHandler handles POST /api/trip-value/batch: an array of raw inputs,
// answered item by item so one bad row does not sink the rest.
func BatchHandler(c *gin.Context) {
	var raws []trip.RawInput
	if err := c.ShouldBindJSON(&raws); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	items := make([]batchItem, len(raws))
	for i, raw := range raws {
		in, errs := trip.Validate(raw)
		if errs != nil {
			items[i] = batchItem{Errors: errs}
			continue
		}
		res := trip.Calculate(in)
		items[i] = batchItem{Result: &res}
	}

	c.JSON(http.StatusOK, items)
}

// CompareHandler handles POST /api/trip-value/compare: two candidate trips,
// both computed, with a changelog of the components that differ. Field
// errors are prefixed with the side they belong to.
func CompareHandler(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	left, leftErrs := trip.Validate(req.Left)
	right, rightErrs := trip.Validate(req.Right)

	var errs trip.FieldErrors
	for _, e := range leftErrs {
		errs = append(errs, trip.FieldError{Field: "left." + e.Field, Message: e.Message})
	}
	for _, e := range rightErrs {
		errs = append(errs, trip.FieldError{Field: "right." + e.Field, Message: e.Message})
	}
	if errs != nil {
		c.JSON(http.StatusBadRequest, errorsResponse{Errors: errs})
		return
	}

	resp := compareResponse{
		Left:    trip.Calculate(left),
		Right:   trip.Calculate(right),
		Changes: []fieldChange{},
	}

	cl, err := diff.GetCustomDiffer().Diff(resp.Left, resp.Right)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compare results"})
		return
	}
	for _, change := range cl {
		if len(change.Path) == 0 {
			continue
		}
		from, _ := change.From.(float64)
		to, _ := change.To.(float64)
		resp.Changes = append(resp.Changes, fieldChange{
			Field: change.Path[0],
			From:  from,
			To:    to,
		})
	}

	c.JSON(http.StatusOK, resp)
}
