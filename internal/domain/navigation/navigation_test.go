package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem_IsActive(t *testing.T) {
	dashboard := SidebarItems[0]
	customers := SidebarItems[1]

	tests := []struct {
		item Item
		path string
		want bool
	}{
		{dashboard, "/", true},
		{dashboard, "", true},
		{dashboard, "/customers", false},
		{customers, "/customers", true},
		{customers, "/customers/42", true},
		{customers, "/customers/", true},
		{customers, "/customers?search=acme", true},
		{customers, "/customersx", false},
		{customers, "/", false},
		{ProfileItems[0], "/profile", true},
		{ProfileItems[0], "/profile/personal-info", false},
		{ProfileItems[1], "/profile/personal-info", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.item.IsActive(tt.path), "%s on %q", tt.item.URL, tt.path)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "/", Normalize(""))
	assert.Equal(t, "/", Normalize("/"))
	assert.Equal(t, "/deals", Normalize("/deals/"))
	assert.Equal(t, "/deals", Normalize("deals"))
	assert.Equal(t, "/deals", Normalize("/deals#top"))
}

func TestPageKinds(t *testing.T) {
	assert.True(t, IsLanding("/"))
	assert.False(t, IsLanding("/deals"))
	assert.True(t, IsProfilePage("/profile"))
	assert.True(t, IsProfilePage("/profile/security"))
	assert.False(t, IsProfilePage("/settings"))
}

func TestVisibleProfileItems(t *testing.T) {
	assert.Len(t, VisibleProfileItems(true), 4)

	limited := VisibleProfileItems(false)
	assert.Len(t, limited, 3)
	for _, item := range limited {
		assert.NotEqual(t, "Payments", item.Title)
	}
}
