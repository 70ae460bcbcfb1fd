// Package models содержит доменные структуры перевала, пользователя и изображений,
// а также входные структуры запросов (добавление и частичное обновление перевала).
package models

import "time"

// AddTimeLayout — единственный допустимый формат поля add_time.
const AddTimeLayout = "2006-01-02 15:04:05"

// ParseAddTime разбирает add_time в формате AddTimeLayout.
func ParseAddTime(s string) (time.Time, error) {
	return time.Parse(AddTimeLayout, s)
}

// User — отправитель перевала. Email уникален.
type User struct {
	ID    int64  `json:"-"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Fam   string `json:"fam"`
	Name  string `json:"name"`
	Otc   string `json:"otc"`
}

// Coords — координаты перевала, всегда полная тройка.
type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Height    int     `json:"height"`
}

// Level — категории сложности по сезонам, пустая строка означает «не указано».
type Level struct {
	Winter string `json:"winter"`
	Summer string `json:"summer"`
	Autumn string `json:"autumn"`
	Spring string `json:"spring"`
}

// Image — изображение перевала. Data — hex-представление байтов.
type Image struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Data  string `json:"data"`
}

// Pass — перевал вместе с контактами владельца и изображениями.
type Pass struct {
	ID          int64     `json:"id"`
	BeautyTitle string    `json:"beauty_title"`
	Title       string    `json:"title"`
	OtherTitles string    `json:"other_titles"`
	Connect     string    `json:"connect"`
	AddTime     string    `json:"add_time"`
	Status      Status    `json:"status"`
	Coords      Coords    `json:"coords"`
	User        User      `json:"user"`
	Level       Level     `json:"level"`
	Images      []Image   `json:"images"`
	DateAdded   time.Time `json:"date_added"`
}

// Submission — тело запроса POST /submitData.
// Обязательные вложенные объекты и координаты — указатели,
// чтобы отличать «не передано» от нулевого значения.
type Submission struct {
	BeautyTitle string       `json:"beauty_title" validate:"required"`
	Title       string       `json:"title" validate:"required"`
	OtherTitles string       `json:"other_titles"`
	Connect     string       `json:"connect"`
	AddTime     string       `json:"add_time" validate:"required,addtime"`
	User        *UserInput   `json:"user" validate:"required"`
	Coords      *CoordsInput `json:"coords" validate:"required"`
	Level       Level        `json:"level"`
	Images      []ImageInput `json:"images" validate:"omitempty,dive"`
}

// UserInput — данные пользователя в заявке.
type UserInput struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,phone"`
	Fam   string `json:"fam" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Otc   string `json:"otc"`
}

// CoordsInput — координаты в заявке.
type CoordsInput struct {
	Latitude  *Float `json:"latitude" validate:"required"`
	Longitude *Float `json:"longitude" validate:"required"`
	Height    *Int   `json:"height" validate:"required"`
}

// ImageInput — изображение в заявке, data передаётся в hex.
// Изображения без title или data пропускаются при сохранении.
type ImageInput struct {
	Title string `json:"title"`
	Data  string `json:"data" validate:"omitempty,hexbytes"`
}

// Complete сообщает, нужно ли сохранять изображение.
func (i ImageInput) Complete() bool {
	return i.Title != "" && i.Data != ""
}
