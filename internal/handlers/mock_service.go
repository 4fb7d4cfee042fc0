package handlers

import (
	"context"
	"net/http"

	"github.com/paingnyinyikhant1810/noc-members/internal/models"
	"github.com/paingnyinyikhant1810/noc-members/internal/repository"
	"github.com/paingnyinyikhant1810/noc-members/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	loginUser  *models.User
	loginToken string
	loginErr   error
	claims     *service.TokenClaims
	parseErr   error
	basicUser  *models.User
	basicErr   error

	lastLoginUsername string
	lastLoginPassword string
	lastParseToken    string
	lastBasicUsername string
}

func (m *mockAuth) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginUser, m.loginToken, m.loginErr
}
func (m *mockAuth) ParseToken(accessToken string) (*service.TokenClaims, error) {
	m.lastParseToken = accessToken
	return m.claims, m.parseErr
}
func (m *mockAuth) VerifyBasic(ctx context.Context, username, password string) (*models.User, error) {
	m.lastBasicUsername = username
	return m.basicUser, m.basicErr
}

type mockUpdates struct {
	list      []models.Update
	one       *models.Update
	createID  int
	err       error
	lastInput service.UpdateInput
	lastPatch repository.UpdatePatch
	deleted   []int
}

func (m *mockUpdates) List(ctx context.Context) ([]models.Update, error) { return m.list, m.err }
func (m *mockUpdates) Get(ctx context.Context, id int) (*models.Update, error) {
	return m.one, m.err
}
func (m *mockUpdates) Create(ctx context.Context, in service.UpdateInput) (int, error) {
	m.lastInput = in
	return m.createID, m.err
}
func (m *mockUpdates) Update(ctx context.Context, id int, p repository.UpdatePatch) error {
	m.lastPatch = p
	return m.err
}
func (m *mockUpdates) Delete(ctx context.Context, id int) error {
	m.deleted = append(m.deleted, id)
	return m.err
}

type mockLibrary struct {
	entries  []models.Entry
	entry    *models.Entry
	folders  []models.Folder
	items    []models.LearningItem
	path     []models.Folder
	createID int
	marked   bool
	err      error

	lastFolderID    *int
	lastEntryInput  service.EntryInput
	lastItemPatch   repository.ItemPatch
	lastFolderPatch repository.FolderPatch
	itemPatchID     int
	folderPatchID   int
	deletedItems    []int
	deletedFolders  []int
	toggled         []int
}

func (m *mockLibrary) ListEntries(ctx context.Context, folderID *int) ([]models.Entry, error) {
	m.lastFolderID = folderID
	return m.entries, m.err
}
func (m *mockLibrary) GetEntry(ctx context.Context, id int, wantFolder bool) (*models.Entry, error) {
	return m.entry, m.err
}
func (m *mockLibrary) CreateEntry(ctx context.Context, in service.EntryInput) (int, error) {
	m.lastEntryInput = in
	return m.createID, m.err
}
func (m *mockLibrary) UpdateItem(ctx context.Context, id int, p repository.ItemPatch) error {
	m.itemPatchID = id
	m.lastItemPatch = p
	return m.err
}
func (m *mockLibrary) UpdateFolder(ctx context.Context, id int, p repository.FolderPatch) error {
	m.folderPatchID = id
	m.lastFolderPatch = p
	return m.err
}
func (m *mockLibrary) DeleteItem(ctx context.Context, id int) error {
	m.deletedItems = append(m.deletedItems, id)
	return m.err
}
func (m *mockLibrary) DeleteFolder(ctx context.Context, id int) error {
	m.deletedFolders = append(m.deletedFolders, id)
	return m.err
}
func (m *mockLibrary) ToggleMark(ctx context.Context, id int) (bool, error) {
	m.toggled = append(m.toggled, id)
	return m.marked, m.err
}
func (m *mockLibrary) ListFolders(ctx context.Context) ([]models.Folder, error) {
	return m.folders, m.err
}
func (m *mockLibrary) FolderPath(ctx context.Context, id int) ([]models.Folder, error) {
	return m.path, m.err
}
func (m *mockLibrary) ListItems(ctx context.Context) ([]models.LearningItem, error) {
	return m.items, m.err
}

type mockInfo struct {
	list      []models.InfoCard
	one       *models.InfoCard
	createID  int
	err       error
	lastInput service.InfoInput
	lastPatch repository.InfoCardPatch
	deleted   []int
}

func (m *mockInfo) List(ctx context.Context, categoryID *int) ([]models.InfoCard, error) {
	return m.list, m.err
}
func (m *mockInfo) Get(ctx context.Context, id int) (*models.InfoCard, error) { return m.one, m.err }
func (m *mockInfo) Create(ctx context.Context, in service.InfoInput) (int, error) {
	m.lastInput = in
	return m.createID, m.err
}
func (m *mockInfo) Update(ctx context.Context, id int, p repository.InfoCardPatch, imageData, imageMime string) error {
	m.lastPatch = p
	return m.err
}
func (m *mockInfo) Delete(ctx context.Context, id int) error {
	m.deleted = append(m.deleted, id)
	return m.err
}

type mockUsers struct {
	list      []models.User
	one       *models.User
	createID  int
	err       error
	lastInput service.UserInput
	lastPatch service.UserPatch
	deleted   []int
}

func (m *mockUsers) List(ctx context.Context) ([]models.User, error)      { return m.list, m.err }
func (m *mockUsers) Get(ctx context.Context, id int) (*models.User, error) { return m.one, m.err }
func (m *mockUsers) Create(ctx context.Context, in service.UserInput) (int, error) {
	m.lastInput = in
	return m.createID, m.err
}
func (m *mockUsers) Update(ctx context.Context, id int, p service.UserPatch) error {
	m.lastPatch = p
	return m.err
}
func (m *mockUsers) Delete(ctx context.Context, id int) error {
	m.deleted = append(m.deleted, id)
	return m.err
}

type mockCategories struct {
	list      []models.Category
	one       *models.Category
	createID  int
	err       error
	lastInput service.CategoryInput
	deleted   []int
}

func (m *mockCategories) List(ctx context.Context) ([]models.Category, error) { return m.list, m.err }
func (m *mockCategories) Get(ctx context.Context, id int) (*models.Category, error) {
	return m.one, m.err
}
func (m *mockCategories) Create(ctx context.Context, in service.CategoryInput) (int, error) {
	m.lastInput = in
	return m.createID, m.err
}
func (m *mockCategories) Update(ctx context.Context, id int, p repository.CategoryPatch) error {
	return m.err
}
func (m *mockCategories) Delete(ctx context.Context, id int) error {
	m.deleted = append(m.deleted, id)
	return m.err
}

type mockCompat struct {
	saveID    int
	saveErr   error
	deleteErr error

	lastTable    string
	lastData     map[string]any
	lastDeleteID int
}

func (m *mockCompat) Save(ctx context.Context, table string, data map[string]any) (int, error) {
	m.lastTable = table
	m.lastData = data
	return m.saveID, m.saveErr
}
func (m *mockCompat) Delete(ctx context.Context, table string, id int) error {
	m.lastTable = table
	m.lastDeleteID = id
	return m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// adminAuth is a mockAuth whose token resolves to an admin session.
func adminAuth() *mockAuth {
	return &mockAuth{claims: &service.TokenClaims{UserID: 1, Role: models.RoleAdmin}}
}

// memberAuth is a mockAuth whose token resolves to a regular member session.
func memberAuth() *mockAuth {
	return &mockAuth{claims: &service.TokenClaims{UserID: 2, Role: models.RoleUser}}
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
