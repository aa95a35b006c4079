package queries_test

import (
	"context"
	"testing"

	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/item"

	"github.com/stretchr/testify/suite"
)

type GetItemDetailsQueryHandlerTestSuite struct {
	queriesTestSuite
}

func (suite *GetItemDetailsQueryHandlerTestSuite) TestHandle_ReturnsFullRecord() {
	// Arrange
	suite.storeItem(1, "Ceramic Tiles", 40, item.InTransit, "keep dry, stack flat", nil)
	handler := queries.NewGetItemDetailsQueryHandler(suite.db)
	query, err := queries.NewGetItemDetailsQuery(suite.itemID(1))
	suite.Require().NoError(err)

	// Act
	details, err := handler.Handle(context.Background(), query)

	// Assert
	suite.Require().NoError(err)
	suite.Equal(int64(1), details.ID)
	suite.Equal("Ceramic Tiles", details.Name)
	suite.Equal(40, details.Quantity)
	suite.Equal("sender-1", details.Sender)
	suite.Equal("receiver-1", details.Receiver)
	suite.Equal("InTransit", details.Status)
	suite.Equal("keep dry, stack flat", details.AdditionalInfo)
}

func (suite *GetItemDetailsQueryHandlerTestSuite) TestHandle_RoundTripAfterRegistration() {
	// Arrange
	ctx := context.Background()
	registered, err := item.NewItem(
		suite.itemID(1),
		"Widget",
		10,
		suite.identity("sender-1"),
		suite.identity("receiver-1"),
		"info",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.itemRepo.Add(ctx, registered))

	handler := queries.NewGetItemDetailsQueryHandler(suite.db)
	query, err := queries.NewGetItemDetailsQuery(suite.itemID(1))
	suite.Require().NoError(err)

	// Act
	details, err := handler.Handle(ctx, query)

	// Assert
	suite.Require().NoError(err)
	suite.Equal(queries.GetItemDetailsQueryResponse{
		ID:             1,
		Name:           "Widget",
		Quantity:       10,
		Sender:         "sender-1",
		Receiver:       "receiver-1",
		Status:         "Created",
		AdditionalInfo: "info",
	}, details)
}

func (suite *GetItemDetailsQueryHandlerTestSuite) TestHandle_UnknownItem_ReturnsZeroResponse() {
	// Arrange
	suite.storeItem(1, "Ceramic Tiles", 40, item.Created, "", nil)
	handler := queries.NewGetItemDetailsQueryHandler(suite.db)
	query, err := queries.NewGetItemDetailsQuery(suite.itemID(99))
	suite.Require().NoError(err)

	// Act
	details, err := handler.Handle(context.Background(), query)

	// Assert
	suite.Require().NoError(err)
	suite.Equal(queries.GetItemDetailsQueryResponse{}, details)
}

func (suite *GetItemDetailsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	// Arrange
	handler := queries.NewGetItemDetailsQueryHandler(suite.db)
	invalidQuery := queries.GetItemDetailsQuery{}

	// Act
	details, err := handler.Handle(context.Background(), invalidQuery)

	// Assert
	suite.Require().Error(err)
	suite.Equal(queries.GetItemDetailsQueryResponse{}, details)
	suite.Contains(err.Error(), "must be created via NewGetItemDetailsQuery constructor")
}

func TestGetItemDetailsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetItemDetailsQueryHandlerTestSuite))
}
