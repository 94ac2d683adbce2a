package cmd

import (
	"log/slog"

	httpadapter "pedidos/internal/adapters/in/http"
	"pedidos/internal/adapters/in/queue"
	"pedidos/internal/adapters/out/catalogclient"
	"pedidos/internal/adapters/out/postgres"
	"pedidos/internal/adapters/out/postgres/outboxrepo"
	"pedidos/internal/adapters/out/sqsqueue"
	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/jobs"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. One instance per process.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	sqsClient  *sqs.Client
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, sqsClient *sqs.Client, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		sqsClient:  sqsClient,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCheckoutOrderCommandHandler() commands.CheckoutOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutOrderCommandHandler(
		f,
		catalogclient.NewProductCatalogClient(
			c.config.CatalogBaseURL, c.config.ClientTimeout, c.config.ClientMaxElapsed,
		),
		catalogclient.NewCustomerDirectoryClient(
			c.config.DirectoryBaseURL, c.config.ClientTimeout, c.config.ClientMaxElapsed,
		),
	)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteCustomerDataCommandHandler() commands.DeleteCustomerDataCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCustomerDataCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersOrderedByStatusQueryHandler() queries.GetOrdersOrderedByStatusQueryHandler {
	return queries.NewGetOrdersOrderedByStatusQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST adapter over all handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCheckoutOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateGetOrderByIDQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetOrdersOrderedByStatusQueryHandler(),
	)
}

// CreatePaymentConfirmationConsumer builds the worker for the payment queue.
func (c *CompositionRoot) CreatePaymentConfirmationConsumer() *queue.Consumer {
	return queue.NewPaymentConfirmationConsumer(
		c.sqsClient,
		c.config.PaymentConfirmationQueueURL,
		c.CreateConfirmPaymentCommandHandler(),
		c.logger,
	)
}

// CreateCustomerErasureConsumer builds the worker for the erasure queue.
func (c *CompositionRoot) CreateCustomerErasureConsumer() *queue.Consumer {
	return queue.NewCustomerErasureConsumer(
		c.sqsClient,
		c.config.CustomerErasureQueueURL,
		c.CreateDeleteCustomerDataCommandHandler(),
		c.logger,
	)
}

// CreateJobManager builds the background jobs. The relay's outbox runs on the
// main connection, outside any unit of work.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		outboxrepo.NewGormNotificationOutbox(c.gormDB),
		sqsqueue.NewPublisher(c.sqsClient, c.config.NotificationQueueURL),
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
