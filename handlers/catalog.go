package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resmoke/models"
)

// GetRepairItemsHandler serves the appliance catalog for the item-selection
// step.
func GetRepairItemsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": models.RepairItems})
}

// GetPaymentMethodsHandler serves the accepted payment methods.
func GetPaymentMethodsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"paymentMethods": models.PaymentMethodOptions})
}

// GetAddressOptionsHandler serves the picker contents for the address step.
func GetAddressOptionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.AddressOptions{
		PropertyTypes: models.PropertyTypes,
		Cities:        models.Cities,
		SuburbsByCity: models.SuburbsByCity,
	})
}
