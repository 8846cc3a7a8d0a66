package staff

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classicmodels/internal/domain/employee"
	employeemocks "classicmodels/internal/domain/employee/mocks"
	"classicmodels/internal/domain/office"
	officemocks "classicmodels/internal/domain/office/mocks"
	apperrors "classicmodels/internal/shared/errors"
	"classicmodels/internal/shared/logger"
)

func newEmployee(t *testing.T, number int64, first, last, officeCode string, reportsTo *int64) *employee.Employee {
	t.Helper()
	e, err := employee.ReconstructEmployee(number, last, first, "x100", "staff@classicmodelcars.com", officeCode, reportsTo, "Sales Rep")
	require.NoError(t, err)
	return e
}

func int64Ptr(v int64) *int64 {
	return &v
}

func setup(t *testing.T) (*employeemocks.MockRepository, *officemocks.MockRepository, *Service) {
	ctrl := gomock.NewController(t)
	employees := employeemocks.NewMockRepository(ctrl)
	offices := officemocks.NewMockRepository(ctrl)
	return employees, offices, NewService(employees, offices, logger.NewNopLogger())
}

func TestService_GetManager(t *testing.T) {
	employees, _, svc := setup(t)
	ctx := context.Background()

	t.Run("follows reportsTo", func(t *testing.T) {
		employees.EXPECT().GetByNumber(gomock.Any(), int64(1501)).
			Return(newEmployee(t, 1501, "Larry", "Bott", "7", int64Ptr(1102)), nil)
		employees.EXPECT().GetByNumber(gomock.Any(), int64(1102)).
			Return(newEmployee(t, 1102, "Gerard", "Bondur", "4", int64Ptr(1056)), nil)

		got, err := svc.GetManager(ctx, 1501)
		require.NoError(t, err)
		assert.Equal(t, int64(1102), got.EmployeeNumber)
	})

	t.Run("top of the hierarchy", func(t *testing.T) {
		employees.EXPECT().GetByNumber(gomock.Any(), int64(1002)).
			Return(newEmployee(t, 1002, "Diane", "Murphy", "1", nil), nil)

		_, err := svc.GetManager(ctx, 1002)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestService_GetEmployeeOffice(t *testing.T) {
	employees, offices, svc := setup(t)
	ctx := context.Background()

	london, err := office.ReconstructOffice("7", "London", "+44 20 7877 2041", "25 Old Broad Street", nil, nil, "UK", "EC2N 1HN", "EMEA")
	require.NoError(t, err)

	employees.EXPECT().GetByNumber(gomock.Any(), int64(1501)).
		Return(newEmployee(t, 1501, "Larry", "Bott", "7", int64Ptr(1102)), nil)
	offices.EXPECT().GetByCode(gomock.Any(), "7").Return(london, nil)

	got, err := svc.GetEmployeeOffice(ctx, 1501)
	require.NoError(t, err)
	assert.Equal(t, "London", got.City)
}

func TestService_ListReports(t *testing.T) {
	employees, _, svc := setup(t)
	ctx := context.Background()

	employees.EXPECT().GetByNumber(gomock.Any(), int64(1102)).
		Return(newEmployee(t, 1102, "Gerard", "Bondur", "4", int64Ptr(1056)), nil)
	employees.EXPECT().ListReports(gomock.Any(), int64(1102)).Return([]*employee.Employee{
		newEmployee(t, 1337, "Loui", "Bondur", "4", int64Ptr(1102)),
		newEmployee(t, 1370, "Gerard", "Hernandez", "4", int64Ptr(1102)),
	}, nil)

	got, err := svc.ListReports(ctx, 1102)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	employees.EXPECT().GetByNumber(gomock.Any(), int64(5)).Return(nil, apperrors.NewNotFoundError("employee not found"))
	_, err = svc.ListReports(ctx, 5)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestService_ListOfficeEmployees(t *testing.T) {
	employees, offices, svc := setup(t)
	ctx := context.Background()

	offices.EXPECT().GetByCode(gomock.Any(), "99").Return(nil, apperrors.NewNotFoundError("office not found"))
	_, err := svc.ListOfficeEmployees(ctx, "99")
	assert.True(t, apperrors.IsNotFoundError(err))

	paris, err := office.ReconstructOffice("4", "Paris", "+33 14 723 4404", "43 Rue Jouffroy D'abbans", nil, nil, "France", "75017", "EMEA")
	require.NoError(t, err)
	offices.EXPECT().GetByCode(gomock.Any(), "4").Return(paris, nil)
	employees.EXPECT().ListByOffice(gomock.Any(), "4").Return([]*employee.Employee{}, nil)

	got, err := svc.ListOfficeEmployees(ctx, "4")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
