package cmd

type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	QueueDriver         string
	RedisAddr           string
	KafkaHost           string
	KafkaConsumerGroup  string
	KafkaShipmentsTopic string
}
