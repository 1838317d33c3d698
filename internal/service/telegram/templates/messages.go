package templates

import "fmt"

const (
	// WelcomeMessageText приветственное сообщение при команде /start
	WelcomeMessageText = "Welcome to the Telegram WebApp SDK Demo!\n\nClick a button below to open the WebApp:"

	// HelpMessageText ответ на команду /help
	HelpMessageText = "This bot demonstrates Telegram WebApp integration.\n\n" +
		"Commands:\n" +
		"/start - Open WebApp menu\n" +
		"/help - Show this message"

	// MenuButtonText текст кнопки, открывающей страницу меню
	MenuButtonText = "Open Burger King Menu"

	// InitDataButtonText текст кнопки, открывающей страницу инспекции init data
	InitDataButtonText = "View Init Data"

	// DefaultWebAppURL запасной адрес WebApp, если URL не задан ни аргументом, ни конфигом
	DefaultWebAppURL = "https://example.com"

	// MenuFragment якорь страницы меню внутри WebApp
	MenuFragment = "#/burger-king"

	// InitDataFragment якорь страницы init data внутри WebApp
	InitDataFragment = "#/init-data"

	// OrderParseErrorText фиксированное сообщение при нечитаемом payload заказа
	OrderParseErrorText = "❌ Error: Could not parse order data."
)

// GetMenuURL возвращает адрес страницы меню для заданного базового URL
func GetMenuURL(webappURL string) string {
	return webappURL + MenuFragment
}

// GetInitDataURL возвращает адрес страницы init data для заданного базового URL
func GetInitDataURL(webappURL string) string {
	return webappURL + InitDataFragment
}

// GetOrderConfirmationText возвращает текст подтверждения заказа
func GetOrderConfirmationText(itemName string, priceDollars float64, orderID string) string {
	return fmt.Sprintf(
		"✅ Order Received!\n\n"+
			"Item: %s\n"+
			"Price: $%.2f\n"+
			"Order ID: #%s\n\n"+
			"Your order is being processed...",
		itemName, priceDollars, orderID,
	)
}

// GetOrderProcessingErrorText возвращает сообщение об ошибке обработки заказа
func GetOrderProcessingErrorText(err error) string {
	return fmt.Sprintf("❌ Error processing order: %s", err)
}
