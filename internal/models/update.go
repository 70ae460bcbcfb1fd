package models

import "time"

// PassUpdate — тело запроса PATCH /submitData/{id}.
// nil означает, что поле не передано и не изменяется.
// User не меняет пользователя, а только подтверждает, что правку делает владелец.
type PassUpdate struct {
	BeautyTitle *string       `json:"beauty_title"`
	Title       *string       `json:"title"`
	OtherTitles *string       `json:"other_titles"`
	Connect     *string       `json:"connect"`
	AddTime     *string       `json:"add_time"`
	Coords      *CoordsUpdate `json:"coords"`
	Level       *LevelUpdate  `json:"level"`
	User        *UserIdentity `json:"user"`
}

// CoordsUpdate — частичное обновление координат.
type CoordsUpdate struct {
	Latitude  *Float `json:"latitude"`
	Longitude *Float `json:"longitude"`
	Height    *Int   `json:"height"`
}

// LevelUpdate — частичное обновление уровней сложности.
type LevelUpdate struct {
	Winter *string `json:"winter"`
	Summer *string `json:"summer"`
	Autumn *string `json:"autumn"`
	Spring *string `json:"spring"`
}

// UserIdentity — блок пользователя в запросе на обновление.
type UserIdentity struct {
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Fam   *string `json:"fam"`
	Name  *string `json:"name"`
	Otc   *string `json:"otc"`
}

// Matches сообщает, совпадает ли каждое переданное поле с данными владельца.
// Блок без единого поля ничего не подтверждает и считается несовпадением.
func (u UserIdentity) Matches(owner User) bool {
	pairs := []struct {
		got  *string
		want string
	}{
		{u.Email, owner.Email},
		{u.Phone, owner.Phone},
		{u.Fam, owner.Fam},
		{u.Name, owner.Name},
		{u.Otc, owner.Otc},
	}
	compared := 0
	for _, p := range pairs {
		if p.got == nil {
			continue
		}
		if *p.got != p.want {
			return false
		}
		compared++
	}
	return compared > 0
}

// FieldChange — колонка pereval_added и её новое значение.
type FieldChange struct {
	Column string
	Value  any
}

// Changes возвращает изменения только по распознанным полям, в фиксированном порядке.
// add_time должен быть заранее проверен валидатором.
func (u PassUpdate) Changes() ([]FieldChange, error) {
	var changes []FieldChange
	addString := func(column string, v *string) {
		if v != nil {
			changes = append(changes, FieldChange{Column: column, Value: *v})
		}
	}

	addString("beauty_title", u.BeautyTitle)
	addString("title", u.Title)
	addString("other_titles", u.OtherTitles)
	addString("connect", u.Connect)
	if u.AddTime != nil {
		t, err := ParseAddTime(*u.AddTime)
		if err != nil {
			return nil, err
		}
		changes = append(changes, FieldChange{Column: "add_time", Value: t})
	}

	if c := u.Coords; c != nil {
		if c.Latitude != nil {
			changes = append(changes, FieldChange{Column: "latitude", Value: float64(*c.Latitude)})
		}
		if c.Longitude != nil {
			changes = append(changes, FieldChange{Column: "longitude", Value: float64(*c.Longitude)})
		}
		if c.Height != nil {
			changes = append(changes, FieldChange{Column: "height", Value: int(*c.Height)})
		}
	}

	if l := u.Level; l != nil {
		addString("winter", l.Winter)
		addString("summer", l.Summer)
		addString("autumn", l.Autumn)
		addString("spring", l.Spring)
	}
	return changes, nil
}

// SubmittedEvent публикуется в очередь модерации после сохранения перевала.
type SubmittedEvent struct {
	EventID     string    `json:"event_id"`
	PassID      int64     `json:"pass_id"`
	Title       string    `json:"title"`
	Email       string    `json:"email"`
	SubmittedAt time.Time `json:"submitted_at"`
}
