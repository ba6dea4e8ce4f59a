package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sikuang/backend/internal/httputil"
	"github.com/sikuang/backend/internal/models"
)

// RegisterBudgetYearRoutes registers the routes for budget years with
// the RouterGroup that is passed.
func RegisterBudgetYearRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetYearList)
		r.GET("", GetBudgetYears)
		r.POST("", CreateBudgetYears)
	}

	// Budget year with ID
	{
		r.OPTIONS("/:id", OptionsBudgetYearDetail)
		r.GET("/:id", GetBudgetYear)
		r.PATCH("/:id", UpdateBudgetYear)
		r.DELETE("/:id", DeleteBudgetYear)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget Years
// @Success		204
// @Router			/v1/budget-years [options]
func OptionsBudgetYearList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget Years
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-years/{id} [options]
func OptionsBudgetYearDetail(c *gin.Context) {
	resourceOptionsDetail[models.BudgetYear](c)
}

// @Summary		Create budget years
// @Description	Creates budget years from the list of submitted budget year data. The response code is the highest response code number that a single budget year creation would have caused. If it is not equal to 201, at least one budget year has an error.
// @Tags			Budget Years
// @Produce		json
// @Success		201			{object}	BudgetYearCreateResponse
// @Failure		400			{object}	BudgetYearCreateResponse
// @Failure		500			{object}	BudgetYearCreateResponse
// @Param			budgetYears	body		[]BudgetYearEditable	true	"Budget years"
// @Router			/v1/budget-years [post]
func CreateBudgetYears(c *gin.Context) {
	var editables []BudgetYearEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetYearCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetYearCreateResponse{}

	for _, editable := range editables {
		budgetYear := editable.model()

		err = models.DB.Create(&budgetYear).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBudgetYear(c, budgetYear)
		r.Data = append(r.Data, BudgetYearResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get budget years
// @Description	Returns a list of budget years
// @Tags			Budget Years
// @Produce		json
// @Success		200	{object}	BudgetYearListResponse
// @Failure		400	{object}	BudgetYearListResponse
// @Failure		500	{object}	BudgetYearListResponse
// @Router			/v1/budget-years [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			active	query	bool	false	"Is the budget year active?"
// @Param			offset	query	uint	false	"The offset of the first budget year returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of budget years to return. Defaults to 50."
func GetBudgetYears(c *gin.Context) {
	var filter BudgetYearQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetYearListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()
	q := models.DB.
		Order("start_date DESC, name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, "", "")

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	limit := listLimit(setFields, filter.Limit)
	q = q.Limit(limit)

	var budgetYears []models.BudgetYear
	err := q.Find(&budgetYears).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetYearListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetYearListResponse{
			Error: &e,
		})
		return
	}

	data := make([]BudgetYear, 0)
	for _, budgetYear := range budgetYears {
		data = append(data, newBudgetYear(c, budgetYear))
	}

	c.JSON(http.StatusOK, BudgetYearListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get budget year
// @Description	Returns a specific budget year
// @Tags			Budget Years
// @Produce		json
// @Success		200	{object}	BudgetYearResponse
// @Failure		400	{object}	BudgetYearResponse
// @Failure		404	{object}	BudgetYearResponse
// @Failure		500	{object}	BudgetYearResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-years/{id} [get]
func GetBudgetYear(c *gin.Context) {
	budgetYear, err := getResource[models.BudgetYear](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetYearResponse{
			Error: &s,
		})
		return
	}

	data := newBudgetYear(c, budgetYear)
	c.JSON(http.StatusOK, BudgetYearResponse{Data: &data})
}

// @Summary		Update budget year
// @Description	Update an existing budget year. Only values to be updated need to be specified.
// @Tags			Budget Years
// @Accept			json
// @Produce		json
// @Success		200			{object}	BudgetYearResponse
// @Failure		400			{object}	BudgetYearResponse
// @Failure		404			{object}	BudgetYearResponse
// @Failure		500			{object}	BudgetYearResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budgetYear	body		BudgetYearEditable	true	"Budget year"
// @Router			/v1/budget-years/{id} [patch]
func UpdateBudgetYear(c *gin.Context) {
	budgetYear, err := getResource[models.BudgetYear](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetYearResponse{
			Error: &s,
		})
		return
	}

	// Fields that are not in the request body keep their current values
	editable := newBudgetYear(c, budgetYear).BudgetYearEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetYearResponse{
			Error: &s,
		})
		return
	}

	editable.apply(&budgetYear)
	err = models.DB.Save(&budgetYear).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetYearResponse{
			Error: &s,
		})
		return
	}

	data := newBudgetYear(c, budgetYear)
	c.JSON(http.StatusOK, BudgetYearResponse{Data: &data})
}

// @Summary		Delete budget year
// @Description	Deletes a budget year
// @Tags			Budget Years
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-years/{id} [delete]
func DeleteBudgetYear(c *gin.Context) {
	_, ok := deleteResource[models.BudgetYear](c)
	if !ok {
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
