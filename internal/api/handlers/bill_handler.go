package handlers

import (
	"path/filepath"
	"strings"

	"billed/internal/dto"
	"billed/internal/models"
	"billed/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var allowedReceiptExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

type BillHandler struct {
	billService *service.BillService
	logger      *zap.Logger
}

func NewBillHandler(billService *service.BillService, logger *zap.Logger) *BillHandler {
	return &BillHandler{
		billService: billService,
		logger:      logger,
	}
}

// CreateBill godoc
// @Summary Upload a receipt and open a draft bill
// @Description Upload the receipt image; returns the stored file URL and the bill key
// @Tags bills
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Receipt image (jpg, jpeg or png)"
// @Param email formData string false "Owner email (informational; the token decides)"
// @Security Bearer
// @Success 201 {object} dto.CreateBillResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bills [post]
func (h *BillHandler) CreateBill(c *fiber.Ctx) error {
	caller, err := getCaller(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedReceiptExtensions[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only jpg, jpeg and png files are allowed",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	resp, err := h.billService.CreateBill(c.Context(), caller.Email, src, file.Filename)
	if err != nil {
		h.logger.Error("Failed to create bill", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create bill",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateBill godoc
// @Summary Finalize or review a bill
// @Description Persist the bill's fields; admins may also set status and a review comment
// @Tags bills
// @Accept json
// @Produce json
// @Param id path string true "Bill key"
// @Param request body dto.UpdateBillRequest true "Bill fields"
// @Security Bearer
// @Success 200 {object} dto.BillResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bills/{id} [put]
func (h *BillHandler) UpdateBill(c *fiber.Ctx) error {
	caller, err := getCaller(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	billID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid bill id",
		})
	}

	var req dto.UpdateBillRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp, err := h.billService.UpdateBill(c.Context(), caller, billID, &req)
	if err != nil {
		switch err {
		case service.ErrBillNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Bill not found",
			})
		case service.ErrNotBillOwner:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Not the bill owner",
			})
		}
		h.logger.Error("Failed to update bill", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update bill",
		})
	}

	return c.JSON(resp)
}

// ListBills godoc
// @Summary List bills
// @Description Employees get their own bills; admins get every bill
// @Tags bills
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.BillResponse
// @Failure 401 {object} map[string]string
// @Router /bills [get]
func (h *BillHandler) ListBills(c *fiber.Ctx) error {
	caller, err := getCaller(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	bills, err := h.billService.ListBills(c.Context(), caller)
	if err != nil {
		h.logger.Error("Failed to list bills", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list bills",
		})
	}

	return c.JSON(bills)
}

func getCaller(c *fiber.Ctx) (*service.Caller, error) {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return nil, fiber.ErrUnauthorized
	}
	userType, _ := c.Locals("userType").(string)
	return &service.Caller{
		Email: email,
		Type:  models.UserType(userType),
	}, nil
}
