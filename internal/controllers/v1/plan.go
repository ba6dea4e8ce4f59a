package v1

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sikuang/backend/internal/httputil"
	"github.com/sikuang/backend/internal/models"
	"gorm.io/gorm/clause"
)

// RegisterPlanRoutes registers the routes for plans with
// the RouterGroup that is passed.
func RegisterPlanRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPlanList)
		r.GET("", GetPlans)
		r.POST("", CreatePlans)
	}

	// Plan with ID
	{
		r.OPTIONS("/:id", OptionsPlanDetail)
		r.GET("/:id", GetPlan)
		r.PATCH("/:id", UpdatePlan)
		r.DELETE("/:id", DeletePlan)
	}

	// Realization of the plan
	{
		r.OPTIONS("/:id/realization", OptionsPlanRealization)
		r.GET("/:id/realization", GetPlanRealization)
	}
}

// loadPlan loads the plan with its category.
func loadPlan(id uuid.UUID) (models.Plan, error) {
	var plan models.Plan
	err := models.DB.Scopes(withCategory).First(&plan, id).Error
	return plan, err
}

// refreshPlans updates the cached realization of the plans. Failures are logged only.
func refreshPlans(c *gin.Context, ids ...uuid.UUID) {
	_, err := models.RefreshPlans(models.DB, ids...)
	if err != nil {
		log.Warn().Str("request-id", requestid.Get(c)).Err(err).Msg("could not refresh plan realizations")
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plans
// @Success		204
// @Router			/v1/plans [options]
func OptionsPlanList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plans
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/plans/{id} [options]
func OptionsPlanDetail(c *gin.Context) {
	resourceOptionsDetail[models.Plan](c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plans
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/plans/{id}/realization [options]
func OptionsPlanRealization(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Create plans
// @Description	Creates plans from the list of submitted plan data. The planned amount is computed from the ekuivalen. The response code is the highest response code number that a single plan creation would have caused. If it is not equal to 201, at least one plan has an error.
// @Tags			Plans
// @Produce		json
// @Success		201		{object}	PlanCreateResponse
// @Failure		400		{object}	PlanCreateResponse
// @Failure		404		{object}	PlanCreateResponse
// @Failure		500		{object}	PlanCreateResponse
// @Param			plans	body		[]PlanEditable	true	"Plans"
// @Router			/v1/plans [post]
func CreatePlans(c *gin.Context) {
	var editables []PlanEditable

	err := bindEkuivalen(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlanCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := PlanCreateResponse{}

	for _, editable := range editables {
		plan := editable.model()

		err = models.DB.Create(&plan).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		refreshPlans(c, plan.ID)

		plan, err = loadPlan(plan.ID)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newPlan(c, plan)
		r.Data = append(r.Data, PlanResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get plans
// @Description	Returns a list of plans
// @Tags			Plans
// @Produce		json
// @Success		200	{object}	PlanListResponse
// @Failure		400	{object}	PlanListResponse
// @Failure		500	{object}	PlanListResponse
// @Router			/v1/plans [get]
// @Param			budgetYear	query	string	false	"Filter by budget year ID"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			name		query	string	false	"Filter by name"
// @Param			description	query	string	false	"Filter by description"
// @Param			search		query	string	false	"Search for this text in name and description"
// @Param			offset		query	uint	false	"The offset of the first plan returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of plans to return. Defaults to 50."
func GetPlans(c *gin.Context) {
	var filter PlanQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PlanListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()
	q := models.DB.
		Preload("Category").
		Order("name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Description, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	limit := listLimit(setFields, filter.Limit)
	q = q.Limit(limit)

	var plans []models.Plan
	err := q.Find(&plans).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PlanListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlanListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Plan, 0)
	for _, plan := range plans {
		data = append(data, newPlan(c, plan))
	}

	c.JSON(http.StatusOK, PlanListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get plan
// @Description	Returns a specific plan with its cached realization
// @Tags			Plans
// @Produce		json
// @Success		200	{object}	PlanResponse
// @Failure		400	{object}	PlanResponse
// @Failure		404	{object}	PlanResponse
// @Failure		500	{object}	PlanResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/plans/{id} [get]
func GetPlan(c *gin.Context) {
	plan, err := getResource[models.Plan](c, withCategory)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PlanResponse{
			Error: &s,
		})
		return
	}

	data := newPlan(c, plan)
	c.JSON(http.StatusOK, PlanResponse{Data: &data})
}

// @Summary		Get plan realization
// @Description	Computes the realization of the plan from its transactions. The result is also written to the cached realization of the plan.
// @Tags			Plans
// @Produce		json
// @Success		200	{object}	PlanRealizationResponse
// @Failure		400	{object}	PlanRealizationResponse
// @Failure		404	{object}	PlanRealizationResponse
// @Failure		500	{object}	PlanRealizationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/plans/{id}/realization [get]
func GetPlanRealization(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PlanRealizationResponse{
			Error: &s,
		})
		return
	}

	plan, realization, err := models.RealizePlan(models.DB, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PlanRealizationResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, PlanRealizationResponse{Data: &PlanRealization{
		PlanID:        plan.ID,
		PlannedAmount: plan.PlannedAmount,
		Realization:   realization,
	}})
}

// @Summary		Update plan
// @Description	Update an existing plan. Only values to be updated need to be specified. The planned amount is recomputed from the ekuivalen.
// @Tags			Plans
// @Accept			json
// @Produce		json
// @Success		200		{object}	PlanResponse
// @Failure		400		{object}	PlanResponse
// @Failure		404		{object}	PlanResponse
// @Failure		500		{object}	PlanResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			plan	body		PlanEditable	true	"Plan"
// @Router			/v1/plans/{id} [patch]
func UpdatePlan(c *gin.Context) {
	plan, err := getResource[models.Plan](c, withCategory)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PlanResponse{
			Error: &s,
		})
		return
	}

	editable := newPlan(c, plan).PlanEditable
	err = bindEkuivalen(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PlanResponse{
			Error: &s,
		})
		return
	}

	editable.apply(&plan)

	// The loaded category would otherwise overwrite the category ID
	err = models.DB.Omit(clause.Associations).Save(&plan).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PlanResponse{
			Error: &s,
		})
		return
	}

	refreshPlans(c, plan.ID)

	plan, err = loadPlan(plan.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PlanResponse{
			Error: &s,
		})
		return
	}

	data := newPlan(c, plan)
	c.JSON(http.StatusOK, PlanResponse{Data: &data})
}

// @Summary		Delete plan
// @Description	Deletes a plan. Transactions linked to the plan are kept.
// @Tags			Plans
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/plans/{id} [delete]
func DeletePlan(c *gin.Context) {
	_, ok := deleteResource[models.Plan](c)
	if !ok {
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
