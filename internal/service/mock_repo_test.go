package service

import (
	"context"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
	"github.com/paingnyinyikhant1810/noc-members/internal/repository"
)

// ---- Repository Fakes ----

type fakeUserRepo struct {
	users     []models.User
	createID  int
	createErr error
	listErr   error

	created     []models.User
	lastPatch   repository.UserPatch
	patchedID   int
	deletedIDs  []int
	updateCalls int
}

func (f *fakeUserRepo) List(ctx context.Context) ([]models.User, error) {
	return f.users, f.listErr
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Username == username {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) Create(ctx context.Context, u models.User) (int, error) {
	f.created = append(f.created, u)
	return f.createID, f.createErr
}
func (f *fakeUserRepo) Update(ctx context.Context, id int, p repository.UserPatch) error {
	f.updateCalls++
	f.patchedID = id
	f.lastPatch = p
	return nil
}
func (f *fakeUserRepo) Delete(ctx context.Context, id int) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type fakeFolderRepo struct {
	folders   []models.Folder
	createID  int
	createErr error
	listErr   error

	created    []models.Folder
	lastPatch  repository.FolderPatch
	patchedID  int
	deletedIDs []int
}

func (f *fakeFolderRepo) List(ctx context.Context) ([]models.Folder, error) {
	return f.folders, f.listErr
}
func (f *fakeFolderRepo) GetByID(ctx context.Context, id int) (*models.Folder, error) {
	for i := range f.folders {
		if f.folders[i].ID == id {
			fl := f.folders[i]
			return &fl, nil
		}
	}
	return nil, nil
}
func (f *fakeFolderRepo) Create(ctx context.Context, fl models.Folder) (int, error) {
	f.created = append(f.created, fl)
	return f.createID, f.createErr
}
func (f *fakeFolderRepo) Update(ctx context.Context, id int, p repository.FolderPatch) error {
	f.patchedID = id
	f.lastPatch = p
	return nil
}
func (f *fakeFolderRepo) Delete(ctx context.Context, ids []int) error {
	f.deletedIDs = append(f.deletedIDs, ids...)
	return nil
}

type fakeItemRepo struct {
	items     []models.LearningItem
	createID  int
	createErr error
	marked    bool

	created        []models.LearningItem
	lastPatch      repository.ItemPatch
	patchedID      int
	deletedIDs     []int
	deletedFolders []int
	toggledIDs     []int
}

func (f *fakeItemRepo) List(ctx context.Context) ([]models.LearningItem, error) {
	return f.items, nil
}
func (f *fakeItemRepo) ListByFolder(ctx context.Context, folderID *int) ([]models.LearningItem, error) {
	var out []models.LearningItem
	for _, it := range f.items {
		if sameFolder(it.FolderID, folderID) {
			out = append(out, it)
		}
	}
	return out, nil
}
func (f *fakeItemRepo) GetByID(ctx context.Context, id int) (*models.LearningItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			it := f.items[i]
			return &it, nil
		}
	}
	return nil, nil
}
func (f *fakeItemRepo) Create(ctx context.Context, it models.LearningItem) (int, error) {
	f.created = append(f.created, it)
	return f.createID, f.createErr
}
func (f *fakeItemRepo) Update(ctx context.Context, id int, p repository.ItemPatch) error {
	f.patchedID = id
	f.lastPatch = p
	return nil
}
func (f *fakeItemRepo) Delete(ctx context.Context, id int) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}
func (f *fakeItemRepo) DeleteByFolders(ctx context.Context, folderIDs []int) error {
	f.deletedFolders = append(f.deletedFolders, folderIDs...)
	return nil
}
func (f *fakeItemRepo) ToggleMark(ctx context.Context, id int) (bool, error) {
	f.toggledIDs = append(f.toggledIDs, id)
	return f.marked, nil
}

func sameFolder(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

type fakeCategoryRepo struct {
	categories []models.Category
	createID   int

	created    []models.Category
	lastPatch  repository.CategoryPatch
	deletedIDs []int
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	return f.categories, nil
}
func (f *fakeCategoryRepo) GetByID(ctx context.Context, id int) (*models.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			c := f.categories[i]
			return &c, nil
		}
	}
	return nil, nil
}
func (f *fakeCategoryRepo) Create(ctx context.Context, c models.Category) (int, error) {
	f.created = append(f.created, c)
	return f.createID, nil
}
func (f *fakeCategoryRepo) Update(ctx context.Context, id int, p repository.CategoryPatch) error {
	f.lastPatch = p
	return nil
}
func (f *fakeCategoryRepo) Delete(ctx context.Context, id int) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type fakeCardRepo struct {
	cards    []models.InfoCard
	createID int

	created           []models.InfoCard
	lastPatch         repository.InfoCardPatch
	patchedID         int
	deletedIDs        []int
	deletedCategories []int
}

func (f *fakeCardRepo) List(ctx context.Context, categoryID *int) ([]models.InfoCard, error) {
	if categoryID == nil {
		return f.cards, nil
	}
	var out []models.InfoCard
	for _, c := range f.cards {
		if c.CategoryID == *categoryID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeCardRepo) GetByID(ctx context.Context, id int) (*models.InfoCard, error) {
	for i := range f.cards {
		if f.cards[i].ID == id {
			c := f.cards[i]
			return &c, nil
		}
	}
	return nil, nil
}
func (f *fakeCardRepo) Create(ctx context.Context, c models.InfoCard) (int, error) {
	f.created = append(f.created, c)
	return f.createID, nil
}
func (f *fakeCardRepo) Update(ctx context.Context, id int, p repository.InfoCardPatch) error {
	f.patchedID = id
	f.lastPatch = p
	return nil
}
func (f *fakeCardRepo) Delete(ctx context.Context, id int) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}
func (f *fakeCardRepo) DeleteByCategory(ctx context.Context, categoryID int) error {
	f.deletedCategories = append(f.deletedCategories, categoryID)
	return nil
}

type fakeUpdateRepo struct {
	updates  []models.Update
	createID int

	created    []models.Update
	lastPatch  repository.UpdatePatch
	deletedIDs []int
}

func (f *fakeUpdateRepo) List(ctx context.Context) ([]models.Update, error) {
	return f.updates, nil
}
func (f *fakeUpdateRepo) GetByID(ctx context.Context, id int) (*models.Update, error) {
	for i := range f.updates {
		if f.updates[i].ID == id {
			u := f.updates[i]
			return &u, nil
		}
	}
	return nil, nil
}
func (f *fakeUpdateRepo) Create(ctx context.Context, u models.Update) (int, error) {
	f.created = append(f.created, u)
	return f.createID, nil
}
func (f *fakeUpdateRepo) Update(ctx context.Context, id int, p repository.UpdatePatch) error {
	f.lastPatch = p
	return nil
}
func (f *fakeUpdateRepo) Delete(ctx context.Context, id int) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func ip(v int) *int       { return &v }
func sp(v string) *string { return &v }
