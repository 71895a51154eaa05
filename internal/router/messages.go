package router

const msgWelcome = "👋 Добро пожаловать в бот приемной комиссии Верхневолжского государственного " +
	"агробиотехнологического университета!\n\n" +
	"Здесь вы найдете информацию о направлениях обучения, сроках приема документов, " +
	"правилах поступления и многое другое.\n\n" +
	"Выберите интересующий вас раздел:"

const (
	msgMainMenu       = "Главное меню:"
	msgSearchPrompt   = "Введите ключевое слово для поиска информации:"
	msgNotUnderstood  = "Я не понимаю этот запрос. Воспользуйтесь меню или отправьте запрос для поиска."
	msgSearchResults  = "Результаты поиска по запросу '%s':"
	msgNothingFound   = "По запросу '%s' ничего не найдено. Попробуйте другие ключевые слова или воспользуйтесь меню для навигации."
	msgFAQTitle       = "Часто задаваемые вопросы:"
	msgFAQEmpty       = "FAQ раздел пока не заполнен"
	msgFAQQuestion    = "Вопрос %d"
	msgSubmenuDefault = "Выберите раздел:"
	msgDocuments      = "Документы"
)

const (
	noticeNotFound         = "Информация не найдена"
	noticeFAQNotFound      = "Вопрос не найден"
	noticeDocumentsMissing = "Документы не найдены"
	noticeInProgress       = "Раздел в разработке"
)

const (
	labelBack      = "⬅️ Назад"
	labelToMain    = "⬅️ В главное меню"
	labelMainMenu  = "⬅️ Главное меню"
	labelOpenLink  = "🔗 Открыть ссылку"
	labelPrevPage  = "◀️"
	labelNextPage  = "▶️"
	labelDocument  = "Документ"
	labelFAQPrev   = "◀️ Пред."
	labelFAQNext   = "След. ▶️"
	labelBackToFAQ = "Назад к FAQ"
)
