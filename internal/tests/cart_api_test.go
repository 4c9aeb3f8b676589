// internal/tests/cart_api_test.go
package tests

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/rmagrichem/agrichem-backend/internal/config"
	"github.com/rmagrichem/agrichem-backend/internal/middleware"
	"github.com/rmagrichem/agrichem-backend/internal/store"
)

type CartAPITestSuite struct {
	suite.Suite
	cfg    *config.Config
	st     *store.Store
	router *gin.Engine
}

func (suite *CartAPITestSuite) SetupTest() {
	suite.cfg = testConfig()
	suite.st = store.New()
	suite.st.LoadSeed(store.DefaultSeed())
	suite.router = buildRouter(suite.st, suite.cfg)
}

func (suite *CartAPITestSuite) sessionHeader() map[string]string {
	return map[string]string{middleware.SessionHeader: "suite-session"}
}

func (suite *CartAPITestSuite) cartFromResponse(body map[string]interface{}) map[string]interface{} {
	data := body["data"].(map[string]interface{})
	return data["cart"].(map[string]interface{})
}

func (suite *CartAPITestSuite) TestEmptyCart() {
	w := doJSON(suite.router, "GET", "/v1/cart", nil, suite.sessionHeader())

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := decodeBody(suite.T(), w)
	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(0), data["total_item_count"])
}

func (suite *CartAPITestSuite) TestSessionIDMintedWhenMissing() {
	w := doJSON(suite.router, "GET", "/v1/cart", nil, nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.NotEmpty(suite.T(), w.Header().Get(middleware.SessionHeader))
}

func (suite *CartAPITestSuite) TestAddItemMerges() {
	for i := 0; i < 2; i++ {
		w := doJSON(suite.router, "POST", "/v1/cart/items",
			map[string]interface{}{"product_id": "1"}, suite.sessionHeader())
		assert.Equal(suite.T(), http.StatusOK, w.Code)
	}

	w := doJSON(suite.router, "GET", "/v1/cart", nil, suite.sessionHeader())
	response := decodeBody(suite.T(), w)

	cart := suite.cartFromResponse(response)
	items := cart["items"].([]interface{})
	require.Len(suite.T(), items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(suite.T(), float64(2), item["quantity"])

	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(2), data["total_item_count"])
}

func (suite *CartAPITestSuite) TestAddUnknownProduct() {
	w := doJSON(suite.router, "POST", "/v1/cart/items",
		map[string]interface{}{"product_id": "999"}, suite.sessionHeader())
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *CartAPITestSuite) TestSetQuantity() {
	doJSON(suite.router, "POST", "/v1/cart/items",
		map[string]interface{}{"product_id": "1"}, suite.sessionHeader())

	w := doJSON(suite.router, "PUT", "/v1/cart/items/1",
		map[string]interface{}{"quantity": 5}, suite.sessionHeader())
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := decodeBody(suite.T(), w)
	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(5), data["total_item_count"])
}

func (suite *CartAPITestSuite) TestSetQuantityBelowOneIgnored() {
	doJSON(suite.router, "POST", "/v1/cart/items",
		map[string]interface{}{"product_id": "1"}, suite.sessionHeader())

	w := doJSON(suite.router, "PUT", "/v1/cart/items/1",
		map[string]interface{}{"quantity": 0}, suite.sessionHeader())
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := decodeBody(suite.T(), w)
	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(1), data["total_item_count"])
}

func (suite *CartAPITestSuite) TestRemoveItem() {
	doJSON(suite.router, "POST", "/v1/cart/items",
		map[string]interface{}{"product_id": "1"}, suite.sessionHeader())

	w := doJSON(suite.router, "DELETE", "/v1/cart/items/1", nil, suite.sessionHeader())
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := decodeBody(suite.T(), w)
	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(0), data["total_item_count"])

	// Removing again is a quiet no-op
	w = doJSON(suite.router, "DELETE", "/v1/cart/items/1", nil, suite.sessionHeader())
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *CartAPITestSuite) TestClearCart() {
	doJSON(suite.router, "POST", "/v1/cart/items",
		map[string]interface{}{"product_id": "1"}, suite.sessionHeader())
	doJSON(suite.router, "POST", "/v1/cart/items",
		map[string]interface{}{"product_id": "2"}, suite.sessionHeader())

	w := doJSON(suite.router, "DELETE", "/v1/cart", nil, suite.sessionHeader())
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = doJSON(suite.router, "GET", "/v1/cart", nil, suite.sessionHeader())
	response := decodeBody(suite.T(), w)
	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(0), data["total_item_count"])
}

func (suite *CartAPITestSuite) TestEnquiryLinkEmptyCart() {
	w := doJSON(suite.router, "GET", "/v1/cart/enquiry-link", nil, suite.sessionHeader())
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *CartAPITestSuite) TestEnquiryLink() {
	doJSON(suite.router, "POST", "/v1/cart/items",
		map[string]interface{}{"product_id": "1"}, suite.sessionHeader())
	doJSON(suite.router, "PUT", "/v1/cart/items/1",
		map[string]interface{}{"quantity": 3}, suite.sessionHeader())

	w := doJSON(suite.router, "GET", "/v1/cart/enquiry-link", nil, suite.sessionHeader())
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := decodeBody(suite.T(), w)
	data := response["data"].(map[string]interface{})
	link := data["link"].(string)
	assert.True(suite.T(), strings.HasPrefix(link, "https://wa.me/919876543210?"))
	assert.Contains(suite.T(), link, "GrowMax")
}

func (suite *CartAPITestSuite) TestCartsIsolatedBySession() {
	doJSON(suite.router, "POST", "/v1/cart/items",
		map[string]interface{}{"product_id": "1"},
		map[string]string{middleware.SessionHeader: "farmer-a"})

	w := doJSON(suite.router, "GET", "/v1/cart", nil,
		map[string]string{middleware.SessionHeader: "farmer-b"})
	response := decodeBody(suite.T(), w)
	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(0), data["total_item_count"])
}

func TestCartAPISuite(t *testing.T) {
	suite.Run(t, new(CartAPITestSuite))
}
