package cmd

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	adapterhttp "foodbank/internal/adapters/in/http"
	"foodbank/internal/adapters/out/mailer"
	"foodbank/internal/adapters/out/postgres"
	"foodbank/internal/core/application/usecases/commands"
	"foodbank/internal/core/application/usecases/queries"
	"foodbank/internal/core/domain/services"
	"foodbank/internal/core/ports"
	"foodbank/internal/jobs"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	calendar   *services.SlotCalendar
	location   *time.Location
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, location *time.Location) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier: mailer.NewSMTPNotifier(mailer.Config{
			Host:               configs.SMTPHost,
			Port:               configs.SMTPPort,
			Username:           configs.SMTPUsername,
			Password:           configs.SMTPPassword,
			From:               configs.SMTPFrom,
			StaffInbox:         configs.StaffInbox,
			PartnerEmailDomain: configs.PartnerEmailDomain,
		}),
		calendar: services.NewSlotCalendar(),
		location: location,
	}
}

func (c *CompositionRoot) now() time.Time {
	return time.Now().In(c.location)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.calendar, c.now)
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateModifyOrderCommandHandler() commands.ModifyOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewModifyOrderCommandHandler(f, c.calendar, c.now)
}

func (c *CompositionRoot) CreateModifyAndApproveOrderCommandHandler() commands.ModifyAndApproveOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewModifyAndApproveOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSweepOrdersCommandHandler() commands.SweepOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepOrdersCommandHandler(f, c.now)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrganizationOrdersQueryHandler() queries.GetOrganizationOrdersQueryHandler {
	return queries.NewGetOrganizationOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableSlotsQueryHandler() queries.GetAvailableSlotsQueryHandler {
	return queries.NewGetAvailableSlotsQueryHandler(c.gormDB, c.calendar, c.now)
}

func (c *CompositionRoot) CreateGetPickSheetQueryHandler() queries.GetPickSheetQueryHandler {
	return queries.NewGetPickSheetQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	return adapterhttp.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateApproveOrderCommandHandler(),
		c.CreateModifyOrderCommandHandler(),
		c.CreateModifyAndApproveOrderCommandHandler(),
		c.CreateRejectOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetOrganizationOrdersQueryHandler(),
		c.CreateGetAvailableSlotsQueryHandler(),
		c.CreateGetPickSheetQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSweepOrdersCommandHandler(), c.location, logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
