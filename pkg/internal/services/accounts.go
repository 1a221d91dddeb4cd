package services

import (
	"fmt"

	"github.com/quillapp/quill-server/pkg/internal/database"
	"github.com/quillapp/quill-server/pkg/internal/models"
	"github.com/quillapp/quill-server/pkg/internal/security"
)

func GetAccountWithID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account by id: %w", err)
	}
	return account, nil
}

func GetAccountWithName(name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("name = ?", name).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account by name: %w", err)
	}
	return account, nil
}

// EnsureAccount upserts the local mirror record for a verified viewer.
// The auth subsystem owns the identity; only the display fields follow it.
func EnsureAccount(claims security.ViewerClaims) (models.Account, error) {
	var account models.Account
	if err := database.C.
		Where(models.Account{Name: claims.Name}).
		Attrs(models.Account{Nick: claims.Nick}).
		FirstOrCreate(&account).Error; err != nil {
		return account, fmt.Errorf("unable to ensure account: %v", err)
	}

	if len(claims.Nick) > 0 && account.Nick != claims.Nick {
		account.Nick = claims.Nick
		if err := database.C.Model(&account).Update("nick", claims.Nick).Error; err != nil {
			return account, fmt.Errorf("unable to refresh account nick: %v", err)
		}
	}

	return account, nil
}
