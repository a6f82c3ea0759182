// file: internals/features/finance/payments/controller/invoice_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"classraum_backend/internals/features/finance/payments/dto"
	"classraum_backend/internals/features/finance/payments/model"
	"classraum_backend/internals/features/finance/payments/service"
	studentModel "classraum_backend/internals/features/users/students/model"
	helper "classraum_backend/internals/helpers"
)

type InvoiceController struct {
	DB *gorm.DB
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{DB: db}
}

var invoiceSortable = map[string]string{
	"created_at": "invoice_created_at",
	"due_date":   "invoice_due_date",
	"status":     "invoice_status",
	"amount":     "invoice_final_amount",
}

// 🟢 GET /api/a/payments/invoices
// Filters: student_id, template_id, status, due_from, due_to
func (ctrl *InvoiceController) List(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, "due_date", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.InvoiceModel{}).
		Scopes(helper.ScopeAcademy("invoice_academy_id", academyID))

	if v := c.Query("student_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("invoice_student_id = ?", id)
		}
	}
	if v := c.Query("template_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("invoice_template_id = ?", id)
		}
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("invoice_status = ?", v)
	}
	if v := c.Query("due_from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			q = q.Where("invoice_due_date >= ?", t)
		}
	}
	if v := c.Query("due_to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			q = q.Where("invoice_due_date <= ?", t)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, _ := p.SafeOrderClause(invoiceSortable, "due_date")
	var list []model.InvoiceModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", dto.ToInvoiceResponses(list), helper.BuildMeta(total, p))
}

// 🟢 POST /api/a/payments/invoices — one-off (non-recurring) invoice.
func (ctrl *InvoiceController) Create(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var in dto.InvoiceCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs, err := helper.ValidateStruct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid input")
	} else if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if in.DiscountAmount > in.Amount {
		return helper.JsonError(c, fiber.StatusBadRequest, "discount_amount exceeds amount")
	}

	due, err := time.Parse("2006-01-02", in.DueDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid due_date, want YYYY-MM-DD")
	}

	m := in.ToModel(academyID, due)
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "invoice created", dto.ToInvoiceResponse(m))
}

// 🟢 PATCH /api/a/payments/invoices/:id — only pending invoices move.
func (ctrl *InvoiceController) Update(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	m, err := ctrl.findOwned(c, academyID)
	if err != nil {
		return err
	}
	if m.InvoiceStatus != model.InvoicePending {
		return helper.JsonError(c, fiber.StatusConflict, "only pending invoices can be edited")
	}

	var in dto.InvoiceUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs, err := helper.ValidateStruct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid input")
	} else if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	if in.Amount != nil {
		m.InvoiceAmount = *in.Amount
	}
	if in.DiscountAmount != nil {
		m.InvoiceDiscountAmount = *in.DiscountAmount
	}
	if in.DueDate != nil {
		due, err := time.Parse("2006-01-02", *in.DueDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid due_date, want YYYY-MM-DD")
		}
		m.InvoiceDueDate = due
	}
	if m.InvoiceDiscountAmount > m.InvoiceAmount {
		return helper.JsonError(c, fiber.StatusBadRequest, "discount_amount exceeds amount")
	}
	m.InvoiceFinalAmount = m.InvoiceAmount - m.InvoiceDiscountAmount

	if err := ctrl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "invoice updated", dto.ToInvoiceResponse(*m))
}

// 🟢 POST /api/a/payments/invoices/:id/mark-paid — manual settlement
// (cash, bank transfer) recorded by academy staff.
func (ctrl *InvoiceController) MarkPaid(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	m, err := ctrl.findOwned(c, academyID)
	if err != nil {
		return err
	}
	if m.InvoiceStatus == model.InvoicePaid {
		return helper.JsonError(c, fiber.StatusConflict, "invoice is already paid")
	}
	if m.InvoiceStatus == model.InvoiceRefunded {
		return helper.JsonError(c, fiber.StatusConflict, "refunded invoices cannot be re-paid")
	}

	var in dto.InvoiceMarkPaidDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs, err := helper.ValidateStruct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid input")
	} else if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	now := time.Now()
	m.InvoiceStatus = model.InvoicePaid
	m.InvoicePaidAt = &now
	m.InvoicePaymentMethod = &in.PaymentMethod
	if err := ctrl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "invoice marked paid", dto.ToInvoiceResponse(*m))
}

// 🟢 POST /api/a/payments/invoices/:id/refund
func (ctrl *InvoiceController) Refund(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	m, err := ctrl.findOwned(c, academyID)
	if err != nil {
		return err
	}
	if m.InvoiceStatus != model.InvoicePaid && m.InvoiceStatus != model.InvoiceRefunded {
		return helper.JsonError(c, fiber.StatusConflict, "only paid invoices can be refunded")
	}

	var in dto.InvoiceRefundDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs, err := helper.ValidateStruct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid input")
	} else if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if m.InvoiceRefundedAmount+in.Amount > m.InvoiceFinalAmount {
		return helper.JsonError(c, fiber.StatusBadRequest, "refund exceeds paid amount")
	}

	m.InvoiceRefundedAmount += in.Amount
	m.InvoiceStatus = model.InvoiceRefunded
	if err := ctrl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "invoice refunded", dto.ToInvoiceResponse(*m))
}

// 🟢 POST /api/a/payments/invoices/:id/checkout
// Issues a Midtrans Snap token for a pending invoice. The order id is
// written before the gateway call so the webhook can always match it.
func (ctrl *InvoiceController) Checkout(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	m, err := ctrl.findOwned(c, academyID)
	if err != nil {
		return err
	}
	if m.InvoiceStatus != model.InvoicePending {
		return helper.JsonError(c, fiber.StatusConflict, "only pending invoices can be checked out")
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", m.InvoiceStudentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	orderID := service.BuildOrderID(*m)
	if m.InvoiceOrderID == nil {
		m.InvoiceOrderID = &orderID
		if err := ctrl.DB.Model(m).Update("invoice_order_id", orderID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	} else {
		orderID = *m.InvoiceOrderID
	}

	cust := service.CustomerInput{FirstName: student.StudentName}
	if student.StudentEmail != nil {
		cust.Email = *student.StudentEmail
	}
	if student.StudentPhone != nil {
		cust.Phone = *student.StudentPhone
	}

	token, redirectURL, err := service.GenerateSnapToken(*m, orderID, cust)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "payment gateway error: "+err.Error())
	}

	return helper.JsonOK(c, "checkout created", dto.CheckoutResponse{
		InvoiceID:   m.InvoiceID,
		OrderID:     orderID,
		SnapToken:   token,
		RedirectURL: redirectURL,
	})
}

func (ctrl *InvoiceController) findOwned(c *fiber.Ctx, academyID uuid.UUID) (*model.InvoiceModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "invalid invoice id")
	}

	var m model.InvoiceModel
	if err := ctrl.DB.First(&m, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helper.EnsureAcademyOwned(c, m.InvoiceAcademyID, academyID); err != nil {
		return nil, err
	}
	return &m, nil
}
