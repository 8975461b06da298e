package postgres_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/userrepo"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkTestSuite struct {
	suite.Suite
	container *postgrescontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgrescontainer.Run(ctx,
		"postgres:15-alpine",
		postgrescontainer.WithDatabase("testdb"),
		postgrescontainer.WithUsername("testuser"),
		postgrescontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{
		DriverName: "postgres",
		DSN:        dsn,
	}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&deliveryrepo.DeliveryDTO{}, &orderrepo.OrderDTO{}, &userrepo.UserDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE deliveries, orders, users CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()

	trackedOrder, err := order.NewOrder(kernel.NewUUID())
	suite.Require().NoError(err)
	d, err := delivery.NewDelivery(kernel.NewUUID(), trackedOrder.ID(), 5.0, nil, "")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	orderRepo, ok := uow.OrderRepository().(*orderrepo.GormOrderRepository)
	suite.Require().True(ok, "order repository should be the gorm implementation")
	suite.Require().NoError(orderRepo.Add(ctx, trackedOrder))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, d))

	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	loaded, err := verify.DeliveryRepository().Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Pending, loaded.Status())

	_, err = verify.OrderRepository().Get(ctx, trackedOrder.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()

	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), 5.0, nil, "")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, d))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err = verify.DeliveryRepository().Get(ctx, d.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkTestSuite) TestRollbackAfterCommit_IsInert() {
	ctx := context.Background()

	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), 5.0, nil, "")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, d))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	verify := suite.factory.Create()
	_, err = verify.DeliveryRepository().Get(ctx, d.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkTestSuite) TestBeginTwice_DoesNotNest() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}
