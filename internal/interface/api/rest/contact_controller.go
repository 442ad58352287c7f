package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"contact-manager-api/internal/application/ports"
	domain "contact-manager-api/internal/domain/contact"
	"contact-manager-api/internal/infrastructure/uploads"
	"contact-manager-api/internal/interface/api/rest/dto/contact"
	"contact-manager-api/internal/interface/api/rest/validator"
)

type ContactController struct {
	contactService ports.ContactService
	pictures       ports.PictureStore
	logger         *zap.Logger
}

func NewContactController(
	r *gin.Engine,
	contactService ports.ContactService,
	pictures ports.PictureStore,
	logger *zap.Logger,
) *ContactController {
	cc := &ContactController{
		contactService: contactService,
		pictures:       pictures,
		logger:         logger,
	}

	r.GET(RouteContacts, cc.GetContactsHandler)
	r.POST(RouteContacts, cc.CreateContactHandler)
	r.DELETE(RouteContact, cc.DeleteContactHandler)
	r.POST(RouteRecoverAll, cc.RecoverAllHandler)
	r.POST(RouteRecoverOne, cc.RecoverContactHandler)

	return cc
}

func (cc *ContactController) GetContactsHandler(c *gin.Context) {
	contacts, err := cc.contactService.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to fetch contacts"},
		)
		cc.logger.Error("ListActive() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, contact.ToResponseContacts(contacts))
}

func (cc *ContactController) CreateContactHandler(c *gin.Context) {
	var req contact.CreateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateCreateContact(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "all fields are required",
			"details": errs,
		})
		return
	}

	cDomain, err := contact.ToDomainContact(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	fh, err := c.FormFile("picture")
	switch {
	case err == nil:
		f, ferr := fh.Open()
		if ferr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read picture"})
			return
		}
		defer f.Close()

		name, serr := cc.pictures.Save(fh.Filename, fh.Size, f)
		if serr != nil {
			if errors.Is(serr, uploads.ErrExtension) || errors.Is(serr, uploads.ErrTooLarge) {
				c.JSON(http.StatusBadRequest, gin.H{"error": serr.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store picture"})
			cc.logger.Error("pictures.Save() error", zap.Error(serr))
			return
		}
		cDomain.Picture = name
	case errors.Is(err, http.ErrMissingFile):
		// picture is optional
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid picture upload"})
		return
	}

	if _, err = cc.contactService.Create(c.Request.Context(), cDomain); err != nil {
		// the picture is already on disk at this point, drop it
		if cDomain.Picture != "" {
			if rerr := cc.pictures.Remove(cDomain.Picture); rerr != nil {
				cc.logger.Warn("orphan picture cleanup failed", zap.Error(rerr))
			}
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "database insert error"},
		)
		cc.logger.Error("Create() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, contact.Message{Message: "contact saved successfully"})
}

func (cc *ContactController) DeleteContactHandler(c *gin.Context) {
	id, err := validator.ParseContactID(c.Param("contact_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err = cc.contactService.SoftDelete(c.Request.Context(), domain.ID(id)); err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete contact"},
		)
		cc.logger.Error("SoftDelete() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, contact.Message{Message: "contact marked as deleted"})
}

func (cc *ContactController) RecoverAllHandler(c *gin.Context) {
	if err := cc.contactService.RecoverAll(c.Request.Context()); err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to recover contacts"},
		)
		cc.logger.Error("RecoverAll() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, contact.Message{Message: "all deleted contacts recovered"})
}

func (cc *ContactController) RecoverContactHandler(c *gin.Context) {
	id, err := validator.ParseContactID(c.Param("contact_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err = cc.contactService.RecoverOne(c.Request.Context(), domain.ID(id)); err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to recover contact"},
		)
		cc.logger.Error("RecoverOne() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, contact.Message{Message: fmt.Sprintf("contact %d recovered", id)})
}
