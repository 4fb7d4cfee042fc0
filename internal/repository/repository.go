package repository

import (
	"context"
	"database/sql"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
)

// Patch types carry field-presence partial updates: a nil pointer means "leave
// the column untouched". Nullable references (parent/folder ids) need a
// separate Set flag to distinguish "absent" from "set to NULL".

type UserPatch struct {
	Username     *string
	PasswordHash *string
	DisplayName  *string
	Role         *string
}

type UpdatePatch struct {
	Topic   *string
	Badge   *string
	Message *string
	Author  *string
}

type CategoryPatch struct {
	Name *string
	Icon *string
}

type InfoCardPatch struct {
	CategoryID  *int
	Title       *string
	DisplayType *string
	Icon        *string
	Image       *string
	Link        *string
}

type FolderPatch struct {
	Name        *string
	ParentID    *int
	ParentIDSet bool
}

type ItemPatch struct {
	Name        *string
	Type        *string
	Link        *string
	Content     *string
	FolderID    *int
	FolderIDSet bool
	Marked      *bool
}

type Users interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, u models.User) (int, error)
	Update(ctx context.Context, id int, p UserPatch) error
	Delete(ctx context.Context, id int) error
}

type Updates interface {
	List(ctx context.Context) ([]models.Update, error)
	GetByID(ctx context.Context, id int) (*models.Update, error)
	Create(ctx context.Context, u models.Update) (int, error)
	Update(ctx context.Context, id int, p UpdatePatch) error
	Delete(ctx context.Context, id int) error
}

type Categories interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int) (*models.Category, error)
	Create(ctx context.Context, c models.Category) (int, error)
	Update(ctx context.Context, id int, p CategoryPatch) error
	Delete(ctx context.Context, id int) error
}

type InfoCards interface {
	List(ctx context.Context, categoryID *int) ([]models.InfoCard, error)
	GetByID(ctx context.Context, id int) (*models.InfoCard, error)
	Create(ctx context.Context, c models.InfoCard) (int, error)
	Update(ctx context.Context, id int, p InfoCardPatch) error
	Delete(ctx context.Context, id int) error
	DeleteByCategory(ctx context.Context, categoryID int) error
}

type Folders interface {
	List(ctx context.Context) ([]models.Folder, error)
	GetByID(ctx context.Context, id int) (*models.Folder, error)
	Create(ctx context.Context, f models.Folder) (int, error)
	Update(ctx context.Context, id int, p FolderPatch) error
	Delete(ctx context.Context, ids []int) error
}

type Items interface {
	List(ctx context.Context) ([]models.LearningItem, error)
	ListByFolder(ctx context.Context, folderID *int) ([]models.LearningItem, error)
	GetByID(ctx context.Context, id int) (*models.LearningItem, error)
	Create(ctx context.Context, it models.LearningItem) (int, error)
	Update(ctx context.Context, id int, p ItemPatch) error
	Delete(ctx context.Context, id int) error
	DeleteByFolders(ctx context.Context, folderIDs []int) error
	ToggleMark(ctx context.Context, id int) (bool, error)
}

type Repository struct {
	Users      Users
	Updates    Updates
	Categories Categories
	InfoCards  InfoCards
	Folders    Folders
	Items      Items
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:      NewUserRepository(db),
		Updates:    NewUpdateRepository(db),
		Categories: NewCategoryRepository(db),
		InfoCards:  NewInfoCardRepository(db),
		Folders:    NewFolderRepository(db),
		Items:      NewItemRepository(db),
	}
}
