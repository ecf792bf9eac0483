package cmd

import (
	"log/slog"

	httpadapter "appraise/internal/adapters/in/http"
	"appraise/internal/adapters/out/messaging"
	"appraise/internal/adapters/out/postgres"
	"appraise/internal/adapters/out/telegram"
	"appraise/internal/core/application/usecases/commands"
	"appraise/internal/core/application/usecases/queries"
	"appraise/internal/core/domain/model/user"
	"appraise/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases and jobs together.
// All shared infrastructure (database handle, event queue, allow-list) is
// created once here; handler factories hand out cheap per-request values.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	queue      *messaging.Queue
	notifier   *telegram.Notifier
	allowList  user.AllowList
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from the runtime configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	allowList, err := user.ParseAllowList(config.AppraiserAllowList)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		queue:      messaging.NewQueue(),
		notifier:   telegram.NewNotifier(gormDB, config.TelegramAPIURL, config.TelegramBotToken, logger),
		allowList:  allowList,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) reportUoWFactory() commands.ReportUoWFactory {
	return FuncReportUoWFactory(func() commands.ReportUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.queue)
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	return commands.NewPayOrderCommandHandler(c.orderUoWFactory(), c.queue)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.queue)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.orderUoWFactory(), c.queue)
}

func (c *CompositionRoot) CreateStartAppraiserSearchCommandHandler() commands.StartAppraiserSearchCommandHandler {
	return commands.NewStartAppraiserSearchCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateReportCommandHandler() commands.CreateReportCommandHandler {
	return commands.NewCreateReportCommandHandler(c.reportUoWFactory())
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.allowList)
}

func (c *CompositionRoot) CreateRegisterAppraiserCommandHandler() commands.RegisterAppraiserCommandHandler {
	return commands.NewRegisterAppraiserCommandHandler(c.userUoWFactory(), c.allowList)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClientOrdersQueryHandler() queries.GetClientOrdersQueryHandler {
	return queries.NewGetClientOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAppraiserOrdersQueryHandler() queries.GetAppraiserOrdersQueryHandler {
	return queries.NewGetAppraiserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReportQueryHandler() queries.GetReportQueryHandler {
	return queries.NewGetReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReportByOrderQueryHandler() queries.GetReportByOrderQueryHandler {
	return queries.NewGetReportByOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserByTelegramIDQueryHandler() queries.GetUserByTelegramIDQueryHandler {
	return queries.NewGetUserByTelegramIDQueryHandler(c.gormDB)
}

// CreateJobManager wires the event dispatch job.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.queue,
		c.notifier,
		c.CreateStartAppraiserSearchCommandHandler(),
		c.logger,
	)
}

// CreateHTTPServer wires the inbound HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreatePayOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateAssignOrderCommandHandler(),
		c.CreateCreateReportCommandHandler(),
		c.CreateRegisterUserCommandHandler(),
		c.CreateRegisterAppraiserCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetClientOrdersQueryHandler(),
		c.CreateGetAppraiserOrdersQueryHandler(),
		c.CreateGetReportQueryHandler(),
		c.CreateGetReportByOrderQueryHandler(),
		c.CreateGetUserByTelegramIDQueryHandler(),
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncReportUoWFactory func() commands.ReportUoW

func (f FuncReportUoWFactory) Create() commands.ReportUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
