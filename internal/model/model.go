package model

// LoanPeriodDays is the checkout period. Renewing restarts it from today.
const LoanPeriodDays = 7

type Book struct {
	ID              int    `json:"id" db:"id"`
	Title           string `json:"title" db:"title"`
	Author          string `json:"author" db:"author"`
	Description     string `json:"description" db:"description"`
	Category        string `json:"category" db:"category"`
	Img             string `json:"img" db:"img"`
	Copies          int    `json:"copies" db:"copies"`
	CopiesAvailable int    `json:"copiesAvailable" db:"copies_available"`
}

type Loan struct {
	ID           int    `json:"-" db:"id"`
	UserName     string `json:"userName" db:"username"`
	BookID       int    `json:"bookId" db:"book_id"`
	CheckoutDate Date   `json:"checkoutDate" db:"checkout_date"`
	DueDate      Date   `json:"dueDate" db:"due_date"`
}

// FeeAccount balance is in fee units: one overdue day accrues one unit.
type FeeAccount struct {
	ID       int    `json:"-" db:"id"`
	UserName string `json:"userName" db:"username"`
	Balance  int64  `json:"balance" db:"balance"`
}

// HistoryRecord snapshots book metadata at return time; it does not reference
// the live book row.
type HistoryRecord struct {
	ID           int    `json:"id" db:"id"`
	UserName     string `json:"userName" db:"username"`
	Title        string `json:"title" db:"title"`
	Author       string `json:"author" db:"author"`
	Description  string `json:"description" db:"description"`
	Img          string `json:"img" db:"img"`
	CheckoutDate Date   `json:"checkoutDate" db:"checkout_date"`
	ReturnedDate Date   `json:"returnedDate" db:"returned_date"`
}

type Review struct {
	ID          int     `json:"id" db:"id"`
	UserName    string  `json:"userName" db:"username"`
	BookID      int     `json:"bookId" db:"book_id"`
	Rating      float64 `json:"rating" db:"rating"`
	Description *string `json:"reviewDescription,omitempty" db:"description"`
	ReviewDate  Date    `json:"date" db:"review_date"`
}

type Message struct {
	ID        int     `json:"id" db:"id"`
	UserName  string  `json:"userName" db:"username"`
	Title     string  `json:"title" db:"title"`
	Question  string  `json:"question" db:"question"`
	AdminName *string `json:"adminName,omitempty" db:"admin_name"`
	Response  *string `json:"response,omitempty" db:"response"`
	Closed    bool    `json:"closed" db:"closed"`
}

// ShelfLoan is one row of a borrower's current-loans view. DaysLeft is
// dueDate - today and goes negative once the loan is overdue.
type ShelfLoan struct {
	Book     Book `json:"book"`
	DaysLeft int  `json:"daysLeft"`
}

type AddBookRequest struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Img         string `json:"img"`
	Copies      int    `json:"copies" validate:"gte=0"`
}

type ReviewRequest struct {
	BookID      int     `json:"bookId" validate:"required"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	Description *string `json:"reviewDescription"`
}

type MessageRequest struct {
	Title    string `json:"title" validate:"required"`
	Question string `json:"question" validate:"required"`
}

type AnswerMessageRequest struct {
	ID       int    `json:"id" validate:"required"`
	Response string `json:"response" validate:"required"`
}

type PaymentIntentRequest struct {
	Amount       int64  `json:"amount" validate:"gt=0"`
	Currency     string `json:"currency" validate:"required"`
	ReceiptEmail string `json:"receiptEmail" validate:"required,email"`
}

type ListBooksFilter struct {
	Title    string
	Category string
	Page     int
	Size     int
}

type LoanEvent struct {
	Kind     string `json:"kind"`
	UserName string `json:"userName"`
	BookID   int    `json:"bookId"`
	Date     Date   `json:"date"`
}

const (
	LoanEventCheckedOut = "checked_out"
	LoanEventReturned   = "returned"
	LoanEventRenewed    = "renewed"
)

type FeePaymentMsg struct {
	UserName string `json:"userName"`
}
