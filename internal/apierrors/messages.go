package apierrors

var messages = map[Kind]string{
	InsufficientFunds: "Недостаточно средств на балансе",
	InvalidAmount:     "Некорректная сумма операции",
	NetworkError:      "Ошибка подключения к серверу",
	PlaceNotFound:     "Место не найдено",
	DeviceNotFound:    "Устройство не найдено",
	ServerError:       "Ошибка сервера. Попробуйте позже",
	TimeoutError:      "Превышено время ожидания",
	Unauthorized:      "Нет доступа к операции",
	ValidationError:   "Ошибка валидации данных",
	UnknownError:      "Произошла неизвестная ошибка",
}

// LocalizedMessage returns the operator-facing text for a kind.
func LocalizedMessage(kind Kind) string {
	if m, ok := messages[kind]; ok {
		return m
	}
	return messages[UnknownError]
}
