package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookwormapp/bookworm/internal/entities"
)

// UsersStore defines database operations for user management.
type UsersStore interface {
	CreateUser(user *entities.User) error
	GetUserByID(id uint) (*entities.User, error)
	GetUserByUsername(username string) (*entities.User, error)
}

// BooksStore defines database operations for the book catalogue.
type BooksStore interface {
	CreateBook(book *entities.Book) error
	GetBookByID(id uint) (*entities.Book, error)
	ListBooks(limit, offset int) ([]entities.Book, int64, error)
}

type UsersController struct {
	store UsersStore
}

func NewUsersController(store UsersStore) *UsersController {
	return &UsersController{store: store}
}

type createUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// CreateUser registers a new user.
// POST /api/users
func (uc *UsersController) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	user := &entities.User{
		Username: req.Username,
		Email:    req.Email,
	}
	if err := uc.store.CreateUser(user); err != nil {
		respondInternalError(c, err, "create user")
		return
	}

	respondCreated(c, user)
}

// GetUser returns a user by ID.
// GET /api/users/:id
func (uc *UsersController) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := uc.store.GetUserByID(id)
	if err != nil {
		respondNotFound(c, "user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// LookupUser returns a user by username.
// GET /api/users?username=NAME
func (uc *UsersController) LookupUser(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		respondBadRequest(c, "username query parameter is required")
		return
	}

	user, err := uc.store.GetUserByUsername(username)
	if err != nil {
		respondNotFound(c, "user")
		return
	}

	c.JSON(http.StatusOK, user)
}

type BooksController struct {
	store BooksStore
}

func NewBooksController(store BooksStore) *BooksController {
	return &BooksController{store: store}
}

type createBookRequest struct {
	Title           string `json:"title" binding:"required"`
	Author          string `json:"author" binding:"required"`
	ISBN            string `json:"isbn"`
	Publisher       string `json:"publisher"`
	PublicationYear int    `json:"publication_year"`
}

// CreateBook adds a book to the catalogue.
// POST /api/books
func (bc *BooksController) CreateBook(c *gin.Context) {
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	book := &entities.Book{
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		Publisher:       req.Publisher,
		PublicationYear: req.PublicationYear,
	}
	if err := bc.store.CreateBook(book); err != nil {
		respondInternalError(c, err, "create book")
		return
	}

	respondCreated(c, book)
}

// GetBook returns a book by ID.
// GET /api/books/:id
func (bc *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.store.GetBookByID(id)
	if err != nil {
		respondNotFound(c, "book")
		return
	}

	c.JSON(http.StatusOK, book)
}

// ListBooks returns the catalogue, paginated.
// GET /api/books
func (bc *BooksController) ListBooks(c *gin.Context) {
	limit, offset := parsePagination(c, 50)

	books, total, err := bc.store.ListBooks(limit, offset)
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}

	c.JSON(http.StatusOK, PaginatedResponse{
		Data:    books,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+len(books)) < total,
	})
}
