package queries_test

import (
	"context"
	"time"

	"supplychain/internal/adapters/out/postgres/itemrepo"
	"supplychain/internal/adapters/out/postgres/notifyrepo"
	"supplychain/internal/adapters/out/postgres/ownershiprepo"
	"supplychain/internal/core/domain/model/item"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/ownership"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (t *mockAggregateTracker) TrackAggregate(_ kernel.ItemID, _ any) {}

// queriesTestSuite is the shared base for query handler suites. It starts a
// postgres container once per suite, migrates the ledger schema, and wipes
// every table before each test.
type queriesTestSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	itemRepo        *itemrepo.GormItemRepository
	ownershipRepo   *ownershiprepo.GormOwnershipRepository
	notificationLog *notifyrepo.GormNotificationLog
}

func (suite *queriesTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&itemrepo.ItemDTO{},
		&itemrepo.TransactionDTO{},
		&ownershiprepo.RecordDTO{},
		&notifyrepo.NotificationDTO{},
	)
	suite.Require().NoError(err)

	suite.itemRepo = itemrepo.NewGormItemRepository(db, &mockAggregateTracker{})
	suite.ownershipRepo = ownershiprepo.NewGormOwnershipRepository(db)
	suite.notificationLog = notifyrepo.NewGormNotificationLog(db)
}

func (suite *queriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *queriesTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE items, item_transactions, ownership_records, notifications CASCADE",
	).Error
	suite.Require().NoError(err)
}

func (suite *queriesTestSuite) itemID(value int64) kernel.ItemID {
	id, err := kernel.NewItemID(value)
	suite.Require().NoError(err)
	return id
}

func (suite *queriesTestSuite) identity(value string) kernel.Identity {
	identity, err := kernel.NewIdentity(value)
	suite.Require().NoError(err)
	return identity
}

// storeItem persists an item with the given attributes and returns it.
func (suite *queriesTestSuite) storeItem(
	id int64,
	name string,
	quantity int,
	status item.Status,
	additionalInfo string,
	transactions map[int64]string,
) *item.Item {
	aggregate, err := item.RestoreItem(
		suite.itemID(id),
		name,
		quantity,
		suite.identity("sender-1"),
		suite.identity("receiver-1"),
		status,
		additionalInfo,
		transactions,
	)
	suite.Require().NoError(err)

	err = suite.itemRepo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)

	return aggregate
}

// storeGrant persists an ownership record for the given item and owner.
func (suite *queriesTestSuite) storeGrant(id int64, owner string, grantedAt time.Time) {
	record, err := ownership.NewRecord(suite.itemID(id), suite.identity(owner), grantedAt)
	suite.Require().NoError(err)

	err = suite.ownershipRepo.Add(context.Background(), record)
	suite.Require().NoError(err)
}
