package bot

import "fmt"

// Тексты ответов пользователю.
const (
	StartText = "Привет! Я бот, который поможет не забыть прочитать статьи, найденные тобой в интернете :)\n" +
		"Чтобы я запомнил статью, достаточно передать мне ссылку на нее.\n" +
		"Например, https://example.com\n" +
		"Чтобы получить случайную статью, вызови или напиши команду /get_article.\n" +
		"Помни, отдавая тебе статью на прочтение, она больше не хранится в моей базе. " +
		"Так что тебе нужно ее изучить"

	InvalidURLText = "❌ Неверный формат ссылки. Убедись, что это полноценный URL."
	SavedText      = "Ссылка успешно добавлена в базу данных."
	DuplicateText  = "Вы уже сохраняли эту статью!"
	EmptyText      = "Пока что вы не сохранили ни одной статьи. Отправляйте мне ссылки и я сохраню их!"
)

// ArticleText сообщение с выданной статьей. Статья уже удалена из базы, поэтому читать её нужно сейчас.
func ArticleText(url string) string {
	return fmt.Sprintf("Вы хотели прочитать:\n%s\n Самое время это сделать!", url)
}
