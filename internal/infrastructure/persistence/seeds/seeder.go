// Package seeds populates a classicmodels store with the reference fixtures
// or with generated data for local development.
package seeds

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"classicmodels/internal/domain/order"
	"classicmodels/internal/infrastructure/persistence/mappers"
	"classicmodels/internal/infrastructure/persistence/models"
	"classicmodels/internal/shared/db"
	"classicmodels/internal/shared/logger"
)

const batchSize = 100

// Seeder writes seed data inside a single transaction.
type Seeder struct {
	db          *gorm.DB
	txManager   *db.TransactionManager
	orderMapper mappers.OrderMapper
	logger      logger.Interface
}

// FakeResult reports what a Fake run inserted.
type FakeResult struct {
	Customers int
	Orders    int
}

func NewSeeder(gdb *gorm.DB, log logger.Interface) *Seeder {
	return &Seeder{
		db:          gdb,
		txManager:   db.NewTransactionManager(gdb),
		orderMapper: mappers.NewOrderMapper(),
		logger:      log,
	}
}

// SeedFixtures inserts the embedded reference dataset. Rows whose key
// already exists are left untouched, so running it twice is harmless.
func (s *Seeder) SeedFixtures(ctx context.Context) error {
	fixtures, err := LoadFixtures()
	if err != nil {
		return err
	}
	return s.Seed(ctx, fixtures)
}

// Seed inserts the given fixtures in foreign key order.
func (s *Seeder) Seed(ctx context.Context, f *Fixtures) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		tx := db.GetTxFromContext(ctx, s.db).Clauses(clause.OnConflict{DoNothing: true})

		steps := []struct {
			table string
			rows  interface{}
			count int
		}{
			{models.OfficeModel{}.TableName(), f.Offices, len(f.Offices)},
			{models.EmployeeModel{}.TableName(), f.Employees, len(f.Employees)},
			{models.CustomerModel{}.TableName(), f.Customers, len(f.Customers)},
			{models.ProductLineModel{}.TableName(), f.ProductLines, len(f.ProductLines)},
			{models.ProductModel{}.TableName(), f.Products, len(f.Products)},
			{models.OrderModel{}.TableName(), f.Orders, len(f.Orders)},
			{models.OrderDetailModel{}.TableName(), f.OrderDetails, len(f.OrderDetails)},
			{models.PaymentModel{}.TableName(), f.Payments, len(f.Payments)},
		}

		for _, step := range steps {
			if step.count == 0 {
				continue
			}
			if err := tx.CreateInBatches(step.rows, batchSize).Error; err != nil {
				return fmt.Errorf("failed to seed %s: %w", step.table, err)
			}
			s.logger.Infow("seeded table", "table", step.table, "rows", step.count)
		}
		return nil
	})
}

// Fake inserts n generated customers, each with one to three orders. Sales
// reps are drawn from the employees already present; the same seed yields
// the same data against the same store.
func (s *Seeder) Fake(ctx context.Context, n int, seed uint64) (*FakeResult, error) {
	if n <= 0 {
		return nil, fmt.Errorf("fake customer count must be positive, got %d", n)
	}

	faker := gofakeit.New(seed)
	result := &FakeResult{}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		tx := db.GetTxFromContext(ctx, s.db)

		nextCustomer, err := maxKey(tx, &models.CustomerModel{}, "customerNumber")
		if err != nil {
			return err
		}
		nextOrder, err := maxKey(tx, &models.OrderModel{}, "orderNumber")
		if err != nil {
			return err
		}

		var reps []int64
		if err := tx.Model(&models.EmployeeModel{}).
			Order("employeeNumber").
			Pluck("employeeNumber", &reps).Error; err != nil {
			return fmt.Errorf("failed to list sales reps: %w", err)
		}

		statuses := make([]string, 0, len(order.KnownStatuses()))
		for _, st := range order.KnownStatuses() {
			statuses = append(statuses, st.String())
		}

		customers := make([]models.CustomerModel, 0, n)
		var orders []models.OrderModel
		for i := 0; i < n; i++ {
			nextCustomer++
			customers = append(customers, fakeCustomer(faker, nextCustomer, reps))

			for j := faker.IntRange(1, 3); j > 0; j-- {
				nextOrder++
				o, err := fakeOrder(faker, nextOrder, nextCustomer, statuses)
				if err != nil {
					return err
				}
				orders = append(orders, *s.orderMapper.ToModel(o))
			}
		}

		if err := tx.CreateInBatches(customers, batchSize).Error; err != nil {
			return fmt.Errorf("failed to insert fake customers: %w", err)
		}
		if err := tx.CreateInBatches(orders, batchSize).Error; err != nil {
			return fmt.Errorf("failed to insert fake orders: %w", err)
		}

		result.Customers = len(customers)
		result.Orders = len(orders)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("inserted fake data",
		"customers", result.Customers,
		"orders", result.Orders,
		"seed", seed,
	)
	return result, nil
}

func maxKey(tx *gorm.DB, model interface{}, column string) (int64, error) {
	var current int64
	err := tx.Model(model).
		Select(fmt.Sprintf("COALESCE(MAX(%s), 0)", column)).
		Scan(&current).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read max %s: %w", column, err)
	}
	return current, nil
}

func fakeCustomer(f *gofakeit.Faker, number int64, reps []int64) models.CustomerModel {
	state := f.State()
	postal := f.Zip()
	credit := float64(int64(f.Float64Range(0, 200000)*100)) / 100

	c := models.CustomerModel{
		CustomerNumber:   number,
		CustomerName:     truncate(f.Company(), 50),
		ContactLastName:  f.LastName(),
		ContactFirstName: f.FirstName(),
		Phone:            f.Phone(),
		AddressLine1:     truncate(f.Street(), 50),
		City:             f.City(),
		State:            &state,
		PostalCode:       &postal,
		Country:          f.Country(),
		CreditLimit:      &credit,
	}
	if len(reps) > 0 && f.Bool() {
		rep := reps[f.IntRange(0, len(reps)-1)]
		c.SalesRepEmployeeNumber = &rep
	}
	return c
}

func fakeOrder(f *gofakeit.Faker, number, customer int64, statuses []string) (*order.Order, error) {
	start := time.Date(2003, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2005, time.December, 31, 0, 0, 0, 0, time.UTC)

	ordered := truncateDay(f.DateRange(start, end))
	required := ordered.AddDate(0, 0, f.IntRange(5, 14))
	status := order.Status(f.RandomString(statuses))

	var shipped *time.Time
	if status == order.StatusShipped || status == order.StatusResolved || status == order.StatusDisputed {
		t := ordered.AddDate(0, 0, f.IntRange(1, 10))
		shipped = &t
	}

	return order.ReconstructOrder(number, ordered, required, shipped, status, nil, customer)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
