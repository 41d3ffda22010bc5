//go:generate mockgen -source=../order_book.go         -destination=./mock_order_book.go         -package=mocks
//go:generate mockgen -source=../catalog_repository.go -destination=./mock_catalog_repository.go -package=mocks
//go:generate mockgen -source=../validator.go          -destination=./mock_validator.go          -package=mocks
//go:generate mockgen -source=../logger.go             -destination=./mock_logger.go             -package=mocks
//go:generate mockgen -source=../message_consumer.go   -destination=./mock_message_consumer.go   -package=mocks
//go:generate mockgen -source=../event_publisher.go    -destination=./mock_event_publisher.go    -package=mocks
//go:generate mockgen -source=../order_service.go      -destination=./mock_order_service.go      -package=mocks
//go:generate mockgen -source=../order_remote.go       -destination=./mock_order_remote.go       -package=mocks
//go:generate mockgen -source=../catalog_search_cache.go -destination=./mock_catalog_search_cache.go -package=mocks

package mocks
