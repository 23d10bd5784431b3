package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySignature(t *testing.T) {
	secret := "test_secret"
	good := sign(secret, "order_1", "pay_1")

	assert.True(t, verifySignature(secret, "order_1", "pay_1", good))
	assert.False(t, verifySignature(secret, "order_1", "pay_2", good))
	assert.False(t, verifySignature("", "order_1", "pay_1", good))
	assert.False(t, verifySignature(secret, "order_1", "pay_1", ""))
}

func TestNewPaymentGatewayRequiresKeys(t *testing.T) {
	_, err := NewPaymentGateway("", "secret", "INR")
	assert.Error(t, err)

	gateway, err := NewPaymentGateway("key", "secret", "")
	require.NoError(t, err)
	assert.Equal(t, "INR", gateway.currency)
	assert.True(t, gateway.VerifySignature("o", "p", sign("secret", "o", "p")))
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(129999), toMinorUnits(1299.99))
	assert.Equal(t, int64(0), toMinorUnits(0))
}

func TestObjectNames(t *testing.T) {
	name, err := uniqueObjectName("photos/widget.png")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, "-widget.png"))
	assert.Len(t, name, 32+1+len("widget.png"))

	url := publicURL("bucket", name)
	assert.Equal(t, "https://storage.googleapis.com/bucket/"+name, url)
	assert.Equal(t, name, objectName(url))
	assert.Equal(t, "", objectName(""))
}

func TestTopicMessage(t *testing.T) {
	msg := topicMessage("inventory-alerts", "Low Stock Alert", "Widget is low", map[string]string{"id": "n1"})
	assert.Equal(t, "inventory-alerts", msg.Topic)
	assert.Equal(t, "Low Stock Alert", msg.Notification.Title)
	assert.Equal(t, "n1", msg.Data["id"])
}
