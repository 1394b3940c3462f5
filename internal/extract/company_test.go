package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistrableDomain(t *testing.T) {
	assert.Equal(t, "acme.io", RegistrableDomain("https://www.acme.io/pricing?x=1"))
	assert.Equal(t, "acme.co.uk", RegistrableDomain("https://app.acme.co.uk/"))
	assert.Equal(t, "", RegistrableDomain("not a url"))
	assert.Equal(t, "", RegistrableDomain(""))
}

func TestCompanyFromURLsSkipsPlatforms(t *testing.T) {
	name, website, dom := CompanyFromURLs([]string{
		"https://www.reddit.com/r/startups/123",
		"https://github.com/acme/widget",
		"https://www.acme.io/about",
	})
	assert.Equal(t, "Acme", name)
	assert.Equal(t, "https://acme.io", website)
	assert.Equal(t, "acme.io", dom)
}

func TestCompanyFromURLsAllPlatforms(t *testing.T) {
	name, website, dom := CompanyFromURLs([]string{
		"https://news.ycombinator.com/item?id=1",
		"https://medium.com/@someone/post",
	})
	assert.Empty(t, name)
	assert.Empty(t, website)
	assert.Empty(t, dom)
}

func TestCompanyFromURLsEmpty(t *testing.T) {
	name, website, dom := CompanyFromURLs(nil)
	assert.Empty(t, name)
	assert.Empty(t, website)
	assert.Empty(t, dom)
}
