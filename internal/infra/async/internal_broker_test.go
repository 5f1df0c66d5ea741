package async_test

import (
	"context"

	"sensorhub-server/internal/infra/async"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Local Broker", func() {
	var broker *async.LocalBroker
	var topic async.BrokerTopicName
	var subscription async.Subscription
	var message async.BrokerMessage
	var ctx context.Context

	BeforeEach(func() {
		broker = async.NewLocalBroker()
		ctx = context.TODO()
	})

	Context("Subscribe", func() {
		When("a subscriber exists for a topic", func() {
			BeforeEach(func() {
				topic = "sensor_samples"
				subscription, _ = broker.Subscribe(topic)
				message = async.BrokerMessage{
					Event: "sample_recorded",
					Value: "3bfc1a88-6a3e-4f86-9d29-5f3b7a10c101",
				}
			})

			It("should receive published messages", func() {
				broker.Publish(ctx, topic, message)

				Eventually(subscription.Receiver).Should(Receive(And(
					HaveField("Event", "sample_recorded"),
					HaveField("Value", "3bfc1a88-6a3e-4f86-9d29-5f3b7a10c101"),
				)))
			})
		})

		When("multiple subscribers exist", func() {
			var subscription2 async.Subscription

			BeforeEach(func() {
				topic = "sensor_samples"
				subscription, _ = broker.Subscribe(topic)
				subscription2, _ = broker.Subscribe(topic)
			})

			It("should fan out to every subscriber", func() {
				broker.Publish(ctx, topic, async.BrokerMessage{})

				Eventually(subscription.Receiver).Should(Receive(&async.BrokerMessage{}))
				Eventually(subscription2.Receiver).Should(Receive(&async.BrokerMessage{}))
			})
		})

		When("the broker is stopped", func() {
			BeforeEach(func() {
				topic = "sensor_samples"
				subscription, _ = broker.Subscribe(topic)
			})

			It("should close the receiver channel", func() {
				go broker.Stop()

				Eventually(subscription.Receiver).Should(BeClosed())
			})
		})
	})

	Context("Unsubscribe", func() {
		When("the topic has no subscribers", func() {
			BeforeEach(func() {
				topic = "worker_events"
				subscription = async.Subscription{
					ID: "2d582ce4-88e1-40a8-bc14-5cf0311943fd",
				}
			})

			It("should report topic not found", func() {
				err := broker.Unsubscribe(topic, subscription)

				Expect(err).Should(MatchError(async.ErrTopicNotFound))
			})
		})

		When("the subscription is unknown", func() {
			var subscription2 async.Subscription

			BeforeEach(func() {
				topic = "worker_events"
				subscription, _ = broker.Subscribe(topic)
				subscription2 = async.Subscription{
					ID: "2d582ce4-88e1-40a8-bc14-5cf0311943fd",
				}
			})

			It("should report subscriptor not found", func() {
				err := broker.Unsubscribe(topic, subscription2)

				Expect(err).Should(MatchError(async.ErrSubscriptorNotFound))
			})
		})

		When("called twice for the same subscription", func() {
			BeforeEach(func() {
				topic = "worker_events"
				subscription, _ = broker.Subscribe(topic)
				broker.Unsubscribe(topic, subscription)
			})

			It("should not panic", func() {
				err := broker.Unsubscribe(topic, subscription)

				Expect(err).Should(Succeed())
			})
		})
	})

	Context("Publish", func() {
		When("the topic does not exist", func() {
			BeforeEach(func() {
				topic = "unknown_topic"
			})

			It("should return an error", func() {
				err := broker.Publish(ctx, topic, async.BrokerMessage{})

				Expect(err).ShouldNot(Succeed())
			})
		})

		When("there is at least one subscriber", func() {
			BeforeEach(func() {
				topic = "sensor_samples"
				subscription, _ = broker.Subscribe(topic)
			})

			It("should return no error", func() {
				err := broker.Publish(ctx, topic, async.BrokerMessage{})

				Expect(err).Should(Succeed())
			})
		})

		When("a subscriber unsubscribed after the publish", func() {
			var subscription2 async.Subscription

			BeforeEach(func() {
				topic = "sensor_samples"
				subscription, _ = broker.Subscribe(topic)
				subscription2, _ = broker.Subscribe(topic)
			})

			It("should skip the closed receiver and deliver to the rest", func() {
				Expect(broker.Publish(ctx, topic, async.BrokerMessage{Event: "sample_recorded"})).To(Succeed())
				Expect(broker.Unsubscribe(topic, subscription)).To(Succeed())

				Eventually(subscription2.Receiver).Should(Receive(HaveField("Event", "sample_recorded")))
			})
		})

		When("subscribers come and go concurrently", func() {
			BeforeEach(func() {
				topic = "sensor_samples"
			})

			It("should survive publishing against a stopping broker", func() {
				done := make(chan struct{})

				for range 20 {
					subscription, _ = broker.Subscribe(topic)
					go func(s async.Subscription) {
						for range s.Receiver {
						}
					}(subscription)
				}

				go func() {
					defer GinkgoRecover()
					defer close(done)
					for range 100 {
						broker.Publish(ctx, topic, async.BrokerMessage{Event: "sample_recorded"})
					}
				}()

				broker.Stop()

				Eventually(done).Should(BeClosed())
			})
		})
	})
})
