package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriggerPriority(t *testing.T) {
	// funding outranks deadline even when both hit
	assert.Equal(t, "funding", Trigger("we raised a seed round, need this urgent"))
	assert.Equal(t, "deadline", Trigger("urgent, deliver by friday"))
	assert.Equal(t, "launch", Trigger("just launched on product hunt"))
	assert.Equal(t, "", Trigger("nothing going on"))
}

func TestIndustryFirstBucketWins(t *testing.T) {
	// fintech is declared before e-commerce; both terms present
	assert.Equal(t, "Fintech", Industry("a payments marketplace"))
	assert.Equal(t, "E-commerce", Industry("a shopify storefront"))
	assert.Equal(t, "", Industry("plain consulting"))
}
