// Пакет widget — клиентская часть заказа: локальное хранилище позиций, конвейер
// оптимистичных изменений и проекция хранилища в строки представления.
//
// Хранилище (LineStore) принадлежит конвейеру (Pipeline): он единственный пишет в него,
// проектор и экспорт только читают. Сетевые вызовы выполняются асинхронно и
// возвращают Task; обработчики завершения сериализуются мьютексом конвейера.
package widget

import "github.com/Gunvolt24/cafe_order/internal/domain"

// MergeKey — ключ слияния позиций: SKU из намерения без какой-либо нормализации.
// Пространство ключей совпадает с серверным, иначе два хранилища не сойдутся.
func MergeKey(intent domain.AddIntent) string { return intent.Key }
