package command

// User-facing texts, carried over from the production bot verbatim.
const (
	textGreeting = `Вітаю у <b>ADP Pizza</b>! 🍕 Це ваш особистий помічник, завдяки якому ви зможете ознайомитися з нашим меню, замовити піцу та отримати інформацію про акції.

<b>Доступні команди:</b>
<i>/menu</i> - перегляд меню наших піц
<i>/details назва</i> - інформація про обрану піцу

Сподіваємось, ви знайдете улюблені смаки та насолоджуватиметесь кожним шматочком! Cмачного! 🍕`

	textMenuHeader        = "📋 Меню <b>ADP Pizza</b>"
	textItemNotFound      = "Товар не знайдено 😶‍🌫️"
	textAddedToCart       = "Товар додано в кошик 🧺"
	textCartEmpty         = "Наразі кошик пустий 😔"
	textOrderCancelled    = "Замовлення відхилено ❌"
	textPhoneSaved        = "✅ Номер збережено"
	textLocationSaved     = "✅ Адресу збережено"
	textRequestPhone      = "Будь ласка, надайте номер телефону 📱"
	textRequestLocation   = "Будь ласка, вкажіть адресу доставки 🗺️\n\n<i>Telegram -> Attach -> Location</i>"
	textSomethingWrong    = "Щось пішло не так. Спробуйте, будь ласка, ще раз пізніше 😔"
	btnShowAll            = "Показати всі товари"
	btnAddToCart          = "➕ Додати до замовлення"
	btnOpenCart           = "🧺 Перейти до кошику"
	btnStartOrder         = "📄 Перейти до замовлення"
	btnCleanCart          = "❌ Очистити кошик"
	btnMenu               = "📋 Переглянути меню"
	btnConfirmOrder       = "✅ Підтвердити замовлення"
	btnCancelOrder        = "❌ Відхилити замовлення"
	btnChangeAddress      = "🗺️ Змінити адресу"
	btnSharePhone         = "📱 Поділитися номером телефону"
)
