package commands_test

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"appraise/internal/core/application/usecases/commands"
	"appraise/internal/core/domain/model/kernel"
	"appraise/internal/core/domain/model/order"
	"appraise/internal/core/domain/model/report"
	"appraise/internal/core/domain/model/user"
	"appraise/internal/core/ports"
	"appraise/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

// fakeUnitOfWork backs the command handler tests with in-memory repositories.
// It satisfies all three unit-of-work interfaces so one fixture covers every
// handler, and it counts lifecycle calls so tests can assert commit behavior.
type fakeUnitOfWork struct {
	orders  *fakeOrderRepo
	reports *fakeReportRepo
	users   *fakeUserRepo

	began      int
	committed  int
	rolledBack int
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		orders:  &fakeOrderRepo{orders: map[int64]*order.Order{}},
		reports: &fakeReportRepo{reports: map[int64]*report.Report{}},
		users:   &fakeUserRepo{users: map[int64]*user.User{}},
	}
}

func (u *fakeUnitOfWork) Begin(context.Context) error {
	u.began++
	return nil
}

func (u *fakeUnitOfWork) Commit(context.Context) error {
	u.committed++
	return nil
}

func (u *fakeUnitOfWork) Rollback(context.Context) error {
	u.rolledBack++
	return nil
}

func (u *fakeUnitOfWork) OrderRepository() ports.OrderRepository   { return u.orders }
func (u *fakeUnitOfWork) ReportRepository() ports.ReportRepository { return u.reports }
func (u *fakeUnitOfWork) UserRepository() ports.UserRepository     { return u.users }

type fakeOrderUoWFactory struct{ uow *fakeUnitOfWork }

func (f fakeOrderUoWFactory) Create() commands.OrderUoW { return f.uow }

type fakeReportUoWFactory struct{ uow *fakeUnitOfWork }

func (f fakeReportUoWFactory) Create() commands.ReportUoW { return f.uow }

type fakeUserUoWFactory struct{ uow *fakeUnitOfWork }

func (f fakeUserUoWFactory) Create() commands.UserUoW { return f.uow }

type fakeOrderRepo struct {
	orders map[int64]*order.Order
	nextID int64
}

func (r *fakeOrderRepo) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if aggregate.ID() == 0 {
		r.nextID++
		if err := aggregate.SetID(r.nextID); err != nil {
			return err
		}
	}

	r.orders[aggregate.ID()] = aggregate
	return nil
}

func (r *fakeOrderRepo) Update(_ context.Context, aggregate *order.Order) error {
	if _, ok := r.orders[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	r.orders[aggregate.ID()] = aggregate
	return nil
}

func (r *fakeOrderRepo) Get(_ context.Context, id int64) (*order.Order, error) {
	aggregate, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return aggregate, nil
}

func (r *fakeOrderRepo) GetByClientID(_ context.Context, clientID int64) ([]*order.Order, error) {
	return r.filter(func(o *order.Order) bool { return o.ClientID() == clientID }), nil
}

func (r *fakeOrderRepo) GetByAppraiserID(_ context.Context, appraiserID int64) ([]*order.Order, error) {
	return r.filter(func(o *order.Order) bool {
		return o.AppraiserID() != nil && *o.AppraiserID() == appraiserID
	}), nil
}

func (r *fakeOrderRepo) filter(keep func(*order.Order) bool) []*order.Order {
	matched := make([]*order.Order, 0)
	for _, o := range r.orders {
		if keep(o) {
			matched = append(matched, o)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID() < matched[j].ID() })
	return matched
}

type fakeReportRepo struct {
	reports map[int64]*report.Report
	nextID  int64
}

func (r *fakeReportRepo) Add(_ context.Context, aggregate *report.Report) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	for _, existing := range r.reports {
		if existing.OrderID() == aggregate.OrderID() {
			return fmt.Errorf("duplicate report for order %d", aggregate.OrderID())
		}
	}

	if aggregate.ID() == 0 {
		r.nextID++
		if err := aggregate.SetID(r.nextID); err != nil {
			return err
		}
	}

	r.reports[aggregate.ID()] = aggregate
	return nil
}

func (r *fakeReportRepo) Get(_ context.Context, id int64) (*report.Report, error) {
	aggregate, ok := r.reports[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("report", id)
	}
	return aggregate, nil
}

func (r *fakeReportRepo) GetByOrderID(_ context.Context, orderID int64) (*report.Report, error) {
	for _, aggregate := range r.reports {
		if aggregate.OrderID() == orderID {
			return aggregate, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderId", orderID)
}

type fakeUserRepo struct {
	users  map[int64]*user.User
	nextID int64
}

func (r *fakeUserRepo) Add(_ context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if aggregate.ID() == 0 {
		r.nextID++
		if err := aggregate.SetID(r.nextID); err != nil {
			return err
		}
	}

	r.users[aggregate.ID()] = aggregate
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, aggregate *user.User) error {
	if _, ok := r.users[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("user", aggregate.ID())
	}

	r.users[aggregate.ID()] = aggregate
	return nil
}

func (r *fakeUserRepo) Get(_ context.Context, id int64) (*user.User, error) {
	aggregate, ok := r.users[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("user", id)
	}
	return aggregate, nil
}

func (r *fakeUserRepo) GetByTelegramID(_ context.Context, telegramID int64) (*user.User, error) {
	for _, aggregate := range r.users {
		if aggregate.TelegramID() == telegramID {
			return aggregate, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("telegramId", telegramID)
}

// capturePublisher records published events for assertions.
type capturePublisher struct {
	created       []ports.OrderCreatedEvent
	statusChanged []ports.OrderStatusChangedEvent
}

func (p *capturePublisher) PublishOrderCreated(event ports.OrderCreatedEvent) {
	p.created = append(p.created, event)
}

func (p *capturePublisher) PublishOrderStatusChanged(event ports.OrderStatusChangedEvent) {
	p.statusChanged = append(p.statusChanged, event)
}

func testPrice(t *testing.T, s string) kernel.Price {
	t.Helper()
	price, err := kernel.PriceFromString(s)
	require.NoError(t, err)
	return price
}

// seedOrder persists an order in the given lifecycle state.
func seedOrder(
	t *testing.T, uow *fakeUnitOfWork,
	clientID int64, status order.Status, appraiserID, reportID *int64,
) *order.Order {
	t.Helper()

	uow.orders.nextID++
	now := time.Now()
	seeded, err := order.RestoreOrder(
		uow.orders.nextID, clientID, appraiserID,
		"https://cars.example/ad/42", "Kyiv", testPrice(t, "50000.00"),
		now, status, reportID, now, now,
	)
	require.NoError(t, err)

	uow.orders.orders[seeded.ID()] = seeded
	return seeded
}

// seedUser persists a user with the given role.
func seedUser(t *testing.T, uow *fakeUnitOfWork, telegramID int64, role user.Role) *user.User {
	t.Helper()

	uow.users.nextID++
	now := time.Now()
	seeded, err := user.RestoreUser(uow.users.nextID, telegramID, role, now, now)
	require.NoError(t, err)

	uow.users.users[seeded.ID()] = seeded
	return seeded
}
