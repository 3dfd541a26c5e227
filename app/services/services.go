package services

import (
	"github.com/inkpress/inkpress/app/repository"
)

// Services bundles the four stores for the web layer.
type Services struct {
	Identity   *IdentityService
	Taxonomy   *TaxonomyService
	Content    *ContentService
	Discussion *DiscussionService
}

// NewServices creates all service instances over the given repositories.
func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Identity:   NewIdentityService(repos),
		Taxonomy:   NewTaxonomyService(repos),
		Content:    NewContentService(repos),
		Discussion: NewDiscussionService(repos),
	}
}
