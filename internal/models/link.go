package models

// LinksTableName имя таблицы, в которой хранятся ссылки на статьи.
const LinksTableName = "articles"

// Link ссылка на статью, которую пользователь отложил на потом.
type Link struct {
	ID  uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	URL string `gorm:"column:url;not null"     json:"url"`
}

// TableName указывает gorm имя таблицы.
func (Link) TableName() string {
	return LinksTableName
}
