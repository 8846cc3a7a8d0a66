package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	staffdto "classicmodels/internal/application/staff/dto"
	"classicmodels/internal/shared/logger"
	"classicmodels/internal/shared/utils"
)

// StaffService is what StaffHandler needs to serve employees and offices.
type StaffService interface {
	ListEmployees(ctx context.Context) ([]*staffdto.EmployeeDTO, error)
	GetEmployee(ctx context.Context, number int64) (*staffdto.EmployeeDTO, error)
	GetManager(ctx context.Context, number int64) (*staffdto.EmployeeDTO, error)
	GetEmployeeOffice(ctx context.Context, number int64) (*staffdto.OfficeDTO, error)
	ListReports(ctx context.Context, number int64) ([]*staffdto.EmployeeDTO, error)
	ListOffices(ctx context.Context) ([]*staffdto.OfficeDTO, error)
	GetOffice(ctx context.Context, code string) (*staffdto.OfficeDTO, error)
	ListOfficeEmployees(ctx context.Context, code string) ([]*staffdto.EmployeeDTO, error)
}

type StaffHandler struct {
	staff  StaffService
	logger logger.Interface
}

func NewStaffHandler(staff StaffService, logger logger.Interface) *StaffHandler {
	return &StaffHandler{
		staff:  staff,
		logger: logger,
	}
}

// ListEmployees handles GET /employees
// @Summary List employees
// @Tags Employees
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]staffdto.EmployeeDTO}
// @Router /employees [get]
func (h *StaffHandler) ListEmployees(c *gin.Context) {
	result, err := h.staff.ListEmployees(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetEmployee handles GET /employees/:id
// @Summary Get an employee
// @Tags Employees
// @Produce json
// @Param id path int true "Employee number"
// @Success 200 {object} utils.APIResponse{data=staffdto.EmployeeDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /employees/{id} [get]
func (h *StaffHandler) GetEmployee(c *gin.Context) {
	h.employee(c, h.staff.GetEmployee)
}

// GetEmployeeManager handles GET /employees/:id/manager
// @Summary Resolve the manager of an employee
// @Tags Employees
// @Produce json
// @Param id path int true "Employee number"
// @Success 200 {object} utils.APIResponse{data=staffdto.EmployeeDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /employees/{id}/manager [get]
func (h *StaffHandler) GetEmployeeManager(c *gin.Context) {
	h.employee(c, h.staff.GetManager)
}

// GetEmployeeOffice handles GET /employees/:id/office
// @Summary Resolve the office of an employee
// @Tags Employees
// @Produce json
// @Param id path int true "Employee number"
// @Success 200 {object} utils.APIResponse{data=staffdto.OfficeDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /employees/{id}/office [get]
func (h *StaffHandler) GetEmployeeOffice(c *gin.Context) {
	number, err := parseEmployeeNumber(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.staff.GetEmployeeOffice(c.Request.Context(), number)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListEmployeeReports handles GET /employees/:id/reports
// @Summary List the direct reports of an employee
// @Tags Employees
// @Produce json
// @Param id path int true "Employee number"
// @Success 200 {object} utils.APIResponse{data=[]staffdto.EmployeeDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /employees/{id}/reports [get]
func (h *StaffHandler) ListEmployeeReports(c *gin.Context) {
	number, err := parseEmployeeNumber(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.staff.ListReports(c.Request.Context(), number)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListOffices handles GET /offices
// @Summary List offices
// @Tags Offices
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]staffdto.OfficeDTO}
// @Router /offices [get]
func (h *StaffHandler) ListOffices(c *gin.Context) {
	result, err := h.staff.ListOffices(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetOffice handles GET /offices/:code
// @Summary Get an office
// @Tags Offices
// @Produce json
// @Param code path string true "Office code"
// @Success 200 {object} utils.APIResponse{data=staffdto.OfficeDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /offices/{code} [get]
func (h *StaffHandler) GetOffice(c *gin.Context) {
	code, err := utils.ParseStringParam(c, "code", "office code")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.staff.GetOffice(c.Request.Context(), code)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListOfficeEmployees handles GET /offices/:code/employees
// @Summary List the employees of an office
// @Tags Offices
// @Produce json
// @Param code path string true "Office code"
// @Success 200 {object} utils.APIResponse{data=[]staffdto.EmployeeDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /offices/{code}/employees [get]
func (h *StaffHandler) ListOfficeEmployees(c *gin.Context) {
	code, err := utils.ParseStringParam(c, "code", "office code")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.staff.ListOfficeEmployees(c.Request.Context(), code)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *StaffHandler) employee(
	c *gin.Context,
	get func(ctx context.Context, number int64) (*staffdto.EmployeeDTO, error),
) {
	number, err := parseEmployeeNumber(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := get(c.Request.Context(), number)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func parseEmployeeNumber(c *gin.Context) (int64, error) {
	return utils.ParseInt64Param(c, "id", "employee")
}
