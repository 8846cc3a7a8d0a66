package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	staffdto "classicmodels/internal/application/staff/dto"
	"classicmodels/internal/interfaces/http/handlers/testutil"
	"classicmodels/internal/shared/errors"
)

type fakeStaffService struct {
	employees []*staffdto.EmployeeDTO
	employee  *staffdto.EmployeeDTO
	offices   []*staffdto.OfficeDTO
	office    *staffdto.OfficeDTO
	err       error

	called    string
	gotNumber int64
	gotCode   string
}

func (f *fakeStaffService) ListEmployees(ctx context.Context) ([]*staffdto.EmployeeDTO, error) {
	f.called = "ListEmployees"
	return f.employees, f.err
}

func (f *fakeStaffService) GetEmployee(ctx context.Context, number int64) (*staffdto.EmployeeDTO, error) {
	f.called, f.gotNumber = "GetEmployee", number
	return f.employee, f.err
}

func (f *fakeStaffService) GetManager(ctx context.Context, number int64) (*staffdto.EmployeeDTO, error) {
	f.called, f.gotNumber = "GetManager", number
	return f.employee, f.err
}

func (f *fakeStaffService) GetEmployeeOffice(ctx context.Context, number int64) (*staffdto.OfficeDTO, error) {
	f.called, f.gotNumber = "GetEmployeeOffice", number
	return f.office, f.err
}

func (f *fakeStaffService) ListReports(ctx context.Context, number int64) ([]*staffdto.EmployeeDTO, error) {
	f.called, f.gotNumber = "ListReports", number
	return f.employees, f.err
}

func (f *fakeStaffService) ListOffices(ctx context.Context) ([]*staffdto.OfficeDTO, error) {
	f.called = "ListOffices"
	return f.offices, f.err
}

func (f *fakeStaffService) GetOffice(ctx context.Context, code string) (*staffdto.OfficeDTO, error) {
	f.called, f.gotCode = "GetOffice", code
	return f.office, f.err
}

func (f *fakeStaffService) ListOfficeEmployees(ctx context.Context, code string) ([]*staffdto.EmployeeDTO, error) {
	f.called, f.gotCode = "ListOfficeEmployees", code
	return f.employees, f.err
}

func newTestStaffHandler(svc *fakeStaffService) *StaffHandler {
	return NewStaffHandler(svc, testutil.NewMockLogger())
}

func TestStaffHandler_GetEmployeeManager(t *testing.T) {
	t.Run("resolved", func(t *testing.T) {
		svc := &fakeStaffService{employee: &staffdto.EmployeeDTO{EmployeeNumber: 1088, FirstName: "William", LastName: "Patterson"}}
		handler := newTestStaffHandler(svc)
		c, w := testutil.NewTestContext("/employees/1611/manager")
		testutil.SetURLParam(c, "id", "1611")

		handler.GetEmployeeManager(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "GetManager", svc.called)
		assert.Equal(t, int64(1611), svc.gotNumber)
		var got staffdto.EmployeeDTO
		_, err := testutil.ParseData(w, &got)
		require.NoError(t, err)
		assert.Equal(t, int64(1088), got.EmployeeNumber)
	})

	t.Run("president has none", func(t *testing.T) {
		svc := &fakeStaffService{err: errors.NewNotFoundError("manager not found")}
		handler := newTestStaffHandler(svc)
		c, w := testutil.NewTestContext("/employees/1002/manager")
		testutil.SetURLParam(c, "id", "1002")

		handler.GetEmployeeManager(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestStaffHandler_EmployeeEndpoints(t *testing.T) {
	svc := &fakeStaffService{
		employees: []*staffdto.EmployeeDTO{{EmployeeNumber: 1611}},
		employee:  &staffdto.EmployeeDTO{EmployeeNumber: 1088},
		office:    &staffdto.OfficeDTO{OfficeCode: "6", City: "Sydney"},
	}
	handler := newTestStaffHandler(svc)

	c, w := testutil.NewTestContext("/employees")
	handler.ListEmployees(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext("/employees/1088")
	testutil.SetURLParam(c, "id", "1088")
	handler.GetEmployee(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "GetEmployee", svc.called)

	c, w = testutil.NewTestContext("/employees/1088/office")
	testutil.SetURLParam(c, "id", "1088")
	handler.GetEmployeeOffice(c)
	assert.Equal(t, http.StatusOK, w.Code)
	var office staffdto.OfficeDTO
	_, err := testutil.ParseData(w, &office)
	require.NoError(t, err)
	assert.Equal(t, "Sydney", office.City)

	c, w = testutil.NewTestContext("/employees/1088/reports")
	testutil.SetURLParam(c, "id", "1088")
	handler.ListEmployeeReports(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ListReports", svc.called)

	c, w = testutil.NewTestContext("/employees/boss")
	testutil.SetURLParam(c, "id", "boss")
	handler.GetEmployee(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStaffHandler_OfficeEndpoints(t *testing.T) {
	svc := &fakeStaffService{
		offices:   []*staffdto.OfficeDTO{{OfficeCode: "1"}, {OfficeCode: "4"}},
		office:    &staffdto.OfficeDTO{OfficeCode: "4", City: "Paris"},
		employees: []*staffdto.EmployeeDTO{{EmployeeNumber: 1102}},
	}
	handler := newTestStaffHandler(svc)

	c, w := testutil.NewTestContext("/offices")
	handler.ListOffices(c)
	assert.Equal(t, http.StatusOK, w.Code)
	var offices []staffdto.OfficeDTO
	_, err := testutil.ParseData(w, &offices)
	require.NoError(t, err)
	assert.Len(t, offices, 2)

	c, w = testutil.NewTestContext("/offices/4")
	testutil.SetURLParam(c, "code", "4")
	handler.GetOffice(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "4", svc.gotCode)

	c, w = testutil.NewTestContext("/offices/4/employees")
	testutil.SetURLParam(c, "code", "4")
	handler.ListOfficeEmployees(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ListOfficeEmployees", svc.called)
}
