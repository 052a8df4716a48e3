package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inventory-api/auth"
	"inventory-api/config"
	"inventory-api/mocks"
	"inventory-api/models"
	"inventory-api/testutil"
	"inventory-api/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type APITestSuite struct {
	suite.Suite
	db     *gorm.DB
	app    *fiber.App
	mailer *mocks.MockMailer
	token  string
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) SetupSuite() {
	utils.HashCost = bcrypt.MinCost
	config.MAIN_ROUTES = "/v1"
	config.APP_ENV = "testing"
}

func (s *APITestSuite) SetupTest() {
	s.token = ""
	s.db = testutil.NewDB(s.T())
	s.mailer = mocks.NewMockMailer(gomock.NewController(s.T()))
	s.app = NewApp(Dependencies{
		DB:     s.db,
		Tokens: auth.NewLocalIssuer([]byte("a-long-enough-local-secret"), time.Hour),
		Mailer: s.mailer,
	})

	status, body := s.call(fiber.MethodPost, "/v1/user/register", map[string]interface{}{
		"name": "Tester", "email": "tester@x.com", "password": "longpass1", "password_confirm": "longpass1",
	})
	s.Require().Equal(fiber.StatusOK, status, body)
	s.token = body["token"].(map[string]interface{})["access_token"].(string)
}

func (s *APITestSuite) do(req *http.Request) (int, map[string]interface{}) {
	if s.token != "" && req.Header.Get(fiber.HeaderAuthorization) == "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+s.token)
	}
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	var out map[string]interface{}
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		s.Require().NoError(json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func (s *APITestSuite) call(method, path string, body interface{}) (int, map[string]interface{}) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return s.do(req)
}

func payload(body map[string]interface{}) map[string]interface{} {
	return body["message"].(map[string]interface{})
}

func (s *APITestSuite) TestProtectedRoutesNeedBearer() {
	for _, path := range []string{"/v1/suppliers", "/v1/products", "/v1/orders", "/v1/orders-chart", "/v1/create-order-products"} {
		req := httptest.NewRequest(fiber.MethodGet, path, nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-token")
		status, body := s.do(req)
		s.Equal(fiber.StatusUnauthorized, status, path)
		s.Equal("Unauthenticated.", body["message"], path)
	}
}

func (s *APITestSuite) TestLoginAndEmailUnique() {
	status, body := s.call(fiber.MethodPost, "/v1/user/login", map[string]string{"email": "tester@x.com", "password": "longpass1"})
	s.Equal(fiber.StatusOK, status)
	s.Equal("testing", body["app_env"])
	s.Equal("Tester", body["fname"])

	status, body = s.call(fiber.MethodPost, "/v1/user/login", map[string]string{"email": "tester@x.com", "password": "wrongpass"})
	s.Equal(fiber.StatusBadRequest, status)
	s.Equal("Invalid credentials", body["message"])

	_, body = s.call(fiber.MethodPost, "/v1/user/register/email-unique", map[string]string{"email": "tester@x.com"})
	s.Equal(false, body["message"])
	_, body = s.call(fiber.MethodPost, "/v1/user/register/email-unique", map[string]string{"email": "fresh@x.com"})
	s.Equal(true, body["message"])
}

func (s *APITestSuite) TestPasswordReset() {
	var code string
	s.mailer.EXPECT().SendResetCode("tester@x.com", "Tester", gomock.Any()).DoAndReturn(func(_, _, token string) error {
		code = token
		return nil
	})
	s.mailer.EXPECT().SendResetConfirmation("tester@x.com", "Tester").Return(nil)

	status, body := s.call(fiber.MethodPost, "/v1/user/login/password/forgot", map[string]string{"email": "tester@x.com"})
	s.Require().Equal(fiber.StatusOK, status)
	s.Equal("Token sent to tester@x.com", body["message"])

	status, body = s.call(fiber.MethodPost, "/v1/user/login/password/update", map[string]interface{}{
		"email": "tester@x.com", "token": json.Number(code), "password": "newpass12", "password_confirm": "newpass12",
	})
	s.Require().Equal(fiber.StatusOK, status, body)
	s.Equal("Password has been reset", body["message"])

	status, _ = s.call(fiber.MethodPost, "/v1/user/login", map[string]string{"email": "tester@x.com", "password": "newpass12"})
	s.Equal(fiber.StatusOK, status)
}

func (s *APITestSuite) TestInventoryLifecycle() {
	status, body := s.call(fiber.MethodPost, "/v1/suppliers", map[string]string{"name": "Acme"})
	s.Require().Equal(fiber.StatusOK, status, body)
	s.Equal("Acme created successfully", body["message"])

	status, body = s.call(fiber.MethodPost, "/v1/suppliers", map[string]string{"name": "Acme"})
	s.Equal(fiber.StatusBadRequest, status)
	s.Equal("The name has already been taken.", body["message"])

	status, body = s.call(fiber.MethodPost, "/v1/products", map[string]interface{}{
		"supplier_id": 1, "name": "Widget", "description": "Blue widget", "quantity": 1,
	})
	s.Require().Equal(fiber.StatusOK, status, body)
	s.Equal("Acme's Product Added successfully", body["message"])

	_, body = s.call(fiber.MethodGet, "/v1/suppliers", nil)
	suppliers := payload(body)["suppliers"].([]interface{})
	s.Require().Len(suppliers, 1)
	s.Equal(float64(1), suppliers[0].(map[string]interface{})["products_count"])

	status, body = s.call(fiber.MethodPost, "/v1/orders", map[string]interface{}{"order_number": "ORD-1", "product_ids": []uint{1}})
	s.Require().Equal(fiber.StatusOK, status, body)
	s.Equal("ORD-1 added successfully", body["message"])

	_, body = s.call(fiber.MethodGet, "/v1/orders/1", nil)
	s.Equal([]interface{}{float64(1)}, payload(body)["product_ids"])
	order := payload(body)["order"].(map[string]interface{})
	s.Equal("ORD-1", order["order_number"])

	_, body = s.call(fiber.MethodGet, "/v1/create-order-products", nil)
	s.Empty(payload(body)["products"], "stock is used up")

	status, body = s.call(fiber.MethodDelete, "/v1/products/1", nil)
	s.Equal(fiber.StatusConflict, status)
	s.Equal("Widget is already included in an order, hence cannot be deleted", body["message"])

	status, body = s.call(fiber.MethodGet, "/v1/orders-chart", nil)
	s.Require().Equal(fiber.StatusOK, status)
	s.Len(body["month"], 1)
	s.Equal([]interface{}{float64(1)}, body["order_count_data"])
	s.Equal(float64(10), body["max"])

	status, body = s.call(fiber.MethodDelete, "/v1/orders/1", nil)
	s.Equal(fiber.StatusOK, status)
	s.Equal("Order Details deleted successfully", body["message"])

	status, body = s.call(fiber.MethodDelete, "/v1/products/1", nil)
	s.Equal(fiber.StatusOK, status)
	s.Equal("Product deleted successfully", body["message"])
}

func (s *APITestSuite) TestNotFoundAndBadInput() {
	status, body := s.call(fiber.MethodGet, "/v1/suppliers/42", nil)
	s.Equal(fiber.StatusNotFound, status)
	s.Equal("Supplier Not Found", body["message"])

	status, body = s.call(fiber.MethodGet, "/v1/orders/abc", nil)
	s.Equal(fiber.StatusNotFound, status)
	s.Equal("Order Not Found", body["message"])

	req := httptest.NewRequest(fiber.MethodPost, "/v1/suppliers", strings.NewReader("{not json"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	status, body = s.do(req)
	s.Equal(fiber.StatusBadRequest, status)
	s.Equal("Invalid request body", body["message"])

	status, body = s.call(fiber.MethodPost, "/v1/orders", map[string]interface{}{"order_number": "ORD-2", "product_ids": []uint{7}})
	s.Equal(fiber.StatusBadRequest, status)
	s.Equal("The selected product_ids.0 is invalid.", body["message"])

	status, body = s.call(fiber.MethodGet, "/v1/nowhere", nil)
	s.Equal(fiber.StatusNotFound, status)
	s.NotEmpty(body["message"])
}

func (s *APITestSuite) TestSupplierUploadExcel() {
	book := excelize.NewFile()
	sheet := book.GetSheetName(0)
	for i, name := range []string{"Name", "Acme", "Globex"} {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		s.Require().NoError(book.SetCellValue(sheet, cell, name))
	}
	xlsx, err := book.WriteToBuffer()
	s.Require().NoError(err)

	var form bytes.Buffer
	writer := multipart.NewWriter(&form)
	part, err := writer.CreateFormFile("file", "suppliers.xlsx")
	s.Require().NoError(err)
	_, err = part.Write(xlsx.Bytes())
	s.Require().NoError(err)
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/v1/suppliers/upload-excel", &form)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	status, body := s.do(req)
	s.Require().Equal(fiber.StatusOK, status, body)
	s.Equal(float64(2), payload(body)["success_count"])

	var count int64
	s.Require().NoError(s.db.Model(&models.Supplier{}).Count(&count).Error)
	s.Equal(int64(2), count)
}

func (s *APITestSuite) TestProductExport() {
	supplier := testutil.CreateSupplier(s.T(), s.db, "Acme")
	testutil.CreateProduct(s.T(), s.db, supplier.ID, "Widget", 3)

	req := httptest.NewRequest(fiber.MethodGet, "/v1/products/export", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+s.token)
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Contains(resp.Header.Get(fiber.HeaderContentType), "spreadsheetml")
	s.Contains(resp.Header.Get(fiber.HeaderContentDisposition), "attachment")

	book, err := excelize.OpenReader(resp.Body)
	s.Require().NoError(err)
	rows, err := book.GetRows("Products")
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("Widget", rows[1][1])
}
