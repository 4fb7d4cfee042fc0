package service

import (
	"context"
	"errors"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
	"github.com/paingnyinyikhant1810/noc-members/internal/repository"
)

// Domain errors shared across services. Handlers map these onto HTTP codes.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrReservedAdmin      = errors.New("the reserved admin account cannot be deleted")
	ErrCycle              = errors.New("move would create a folder cycle")
	ErrInvalidTable       = errors.New("invalid table")
)

// TokenClaims is what the auth middleware learns from a parsed session token.
type TokenClaims struct {
	UserID int
	Role   string
}

type Authorization interface {
	// Login validates credentials and returns the user summary plus a signed
	// session token. ErrInvalidCredentials never says which part was wrong.
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	// ParseToken verifies a bearer token and returns its claims.
	ParseToken(accessToken string) (*TokenClaims, error)
	// VerifyBasic checks a legacy Basic username/password pair against the store.
	VerifyBasic(ctx context.Context, username, password string) (*models.User, error)
}

// UpdateInput is the payload for creating a feed entry.
type UpdateInput struct {
	Topic   string
	Badge   string
	Message string
	Author  string
}

type Updates interface {
	List(ctx context.Context) ([]models.Update, error)
	Get(ctx context.Context, id int) (*models.Update, error)
	Create(ctx context.Context, in UpdateInput) (int, error)
	Update(ctx context.Context, id int, p repository.UpdatePatch) error
	Delete(ctx context.Context, id int) error
}

// EntryInput creates a node of the learning library: a folder when Type is
// "folder", a learning item otherwise.
type EntryInput struct {
	Name     string
	Type     string
	Link     string
	Content  string
	FolderID *int
}

// Library is the folder+file tree: unified listings, partial updates with move
// validation, mark toggling, and full-subtree folder deletion.
type Library interface {
	ListEntries(ctx context.Context, folderID *int) ([]models.Entry, error)
	GetEntry(ctx context.Context, id int, wantFolder bool) (*models.Entry, error)
	CreateEntry(ctx context.Context, in EntryInput) (int, error)
	UpdateItem(ctx context.Context, id int, p repository.ItemPatch) error
	UpdateFolder(ctx context.Context, id int, p repository.FolderPatch) error
	DeleteItem(ctx context.Context, id int) error
	DeleteFolder(ctx context.Context, id int) error
	ToggleMark(ctx context.Context, id int) (bool, error)
	ListFolders(ctx context.Context) ([]models.Folder, error)
	FolderPath(ctx context.Context, id int) ([]models.Folder, error)
	ListItems(ctx context.Context) ([]models.LearningItem, error)
}

// InfoInput is the payload for creating or replacing card art: Image takes a
// URL or data URL, ImageData/ImageMime carry a raw upload to be inlined.
type InfoInput struct {
	CategoryID  int
	Title       string
	DisplayType string
	Icon        string
	Image       string
	ImageData   string
	ImageMime   string
	Link        string
}

type Info interface {
	List(ctx context.Context, categoryID *int) ([]models.InfoCard, error)
	Get(ctx context.Context, id int) (*models.InfoCard, error)
	Create(ctx context.Context, in InfoInput) (int, error)
	Update(ctx context.Context, id int, p repository.InfoCardPatch, imageData, imageMime string) error
	Delete(ctx context.Context, id int) error
}

// UserInput is the payload for account creation.
type UserInput struct {
	Username    string
	Password    string
	DisplayName string
	Role        string
}

// UserPatch is the account partial update; Password is plaintext and only
// rehashed when present.
type UserPatch struct {
	Username    *string
	Password    *string
	DisplayName *string
	Role        *string
}

type Users interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int) (*models.User, error)
	Create(ctx context.Context, in UserInput) (int, error)
	Update(ctx context.Context, id int, p UserPatch) error
	Delete(ctx context.Context, id int) error
}

// CategoryInput is the payload for category creation.
type CategoryInput struct {
	Name string
	Icon string
}

type Categories interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int) (*models.Category, error)
	Create(ctx context.Context, in CategoryInput) (int, error)
	Update(ctx context.Context, id int, p repository.CategoryPatch) error
	Delete(ctx context.Context, id int) error
}

// Compat serves the legacy generic {action, table, data, id} endpoint through
// a closed table→statement mapping.
type Compat interface {
	Save(ctx context.Context, table string, data map[string]any) (int, error)
	Delete(ctx context.Context, table string, id int) error
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Updates
	Library
	Info
	Users
	Categories
	Compat
}

// AuthConfig carries token signing parameters from the config file.
type AuthConfig struct {
	SigningKey string
	TokenTTL   int // minutes
}

// NewService wires the repository layer into concrete services. Compat sits
// on top of the typed services so legacy saves and deletes obey the same
// validation and cascade rules as the REST routes.
func NewService(repos *repository.Repository, auth AuthConfig) *Service {
	updates := NewUpdateService(repos.Updates)
	library := NewLibraryService(repos.Folders, repos.Items)
	info := NewInfoService(repos.InfoCards, repos.Categories)
	users := NewUserService(repos.Users)
	categories := NewCategoryService(repos.Categories, repos.InfoCards)
	return &Service{
		Authorization: NewAuthService(repos.Users, auth),
		Updates:       updates,
		Library:       library,
		Info:          info,
		Users:         users,
		Categories:    categories,
		Compat:        NewCompatService(updates, categories, info, library, users),
	}
}
