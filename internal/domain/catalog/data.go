package catalog

// Default returns the compiled-in catalog: the four certification tracks,
// their question bank, and the curated practice-exam presets.
func Default() *Catalog {
	return New(defaultTracks, defaultQuestions, defaultExams)
}

var defaultTracks = []Track{
	{
		ID:          "aws-cp",
		Name:        "AWS Cloud Practitioner",
		Description: "Foundational understanding of AWS cloud concepts and services",
		Domains: []string{
			"Cloud Concepts",
			"AWS Services",
			"Security & Compliance",
			"Billing & Pricing",
		},
		QuestionCounts: map[string]int{
			"Cloud Concepts":        85,
			"AWS Services":          120,
			"Security & Compliance": 90,
			"Billing & Pricing":     60,
		},
		ExamInfo: ExamInfo{DurationMin: 90, TotalQuestions: 65, PassingScore: 70},
	},
	{
		ID:          "aws-saa",
		Name:        "AWS Solutions Architect Associate",
		Description: "Design resilient, secure, and cost-optimized architectures on AWS",
		Domains: []string{
			"Design Resilient Architectures",
			"Design High-Performing Architectures",
			"Design Secure Applications and Architectures",
			"Design Cost-Optimized Architectures",
		},
		QuestionCounts: map[string]int{
			"Design Resilient Architectures":               120,
			"Design High-Performing Architectures":         95,
			"Design Secure Applications and Architectures": 110,
			"Design Cost-Optimized Architectures":          85,
		},
		ExamInfo: ExamInfo{DurationMin: 130, TotalQuestions: 65, PassingScore: 72},
	},
	{
		ID:          "aws-devops",
		Name:        "AWS DevOps Engineer Professional",
		Description: "Advanced DevOps practices and automation on AWS",
		Domains: []string{
			"SDLC Automation",
			"Configuration Management",
			"Monitoring and Logging",
			"Policies and Standards",
		},
		QuestionCounts: map[string]int{
			"SDLC Automation":          80,
			"Configuration Management": 70,
			"Monitoring and Logging":   60,
			"Policies and Standards":   50,
		},
		ExamInfo: ExamInfo{DurationMin: 180, TotalQuestions: 75, PassingScore: 75},
	},
	{
		ID:          "k8s-cka",
		Name:        "Certified Kubernetes Administrator",
		Description: "Kubernetes cluster administration and troubleshooting",
		Domains: []string{
			"Cluster Architecture",
			"Workloads & Scheduling",
			"Services & Networking",
			"Storage",
			"Troubleshooting",
		},
		QuestionCounts: map[string]int{
			"Cluster Architecture":   45,
			"Workloads & Scheduling": 55,
			"Services & Networking":  40,
			"Storage":                35,
			"Troubleshooting":        25,
		},
		ExamInfo: ExamInfo{DurationMin: 120, TotalQuestions: 15, PassingScore: 66},
	},
}

var defaultQuestions = []Question{
	{
		ID:         "saa-001",
		TrackID:    "aws-saa",
		Domain:     "Design Resilient Architectures",
		Difficulty: DifficultyMedium,
		StemMd: "A company needs to store frequently accessed data with millisecond latency requirements. " +
			"The data must be highly available across multiple Availability Zones.\n\n" +
			"Which AWS service would be the BEST choice for this requirement?",
		Choices: []Choice{
			{ID: "A", TextMd: "Amazon S3 Standard"},
			{ID: "B", TextMd: "Amazon ElastiCache for Redis"},
			{ID: "C", TextMd: "Amazon EBS gp3 volumes"},
			{ID: "D", TextMd: "Amazon DynamoDB"},
		},
		CorrectChoiceIDs: []string{"B"},
		ExplanationMd: "**Amazon ElastiCache for Redis** provides sub-millisecond latency for frequently " +
			"accessed data and supports Multi-AZ deployments for high availability. S3 latency is in the " +
			"hundreds of milliseconds, EBS volumes are single-AZ, and DynamoDB offers single-digit " +
			"millisecond latency rather than sub-millisecond.",
		References: []Reference{
			{Label: "ElastiCache Documentation", URL: "https://docs.aws.amazon.com/elasticache/"},
			{Label: "Multi-AZ Setup", URL: "https://docs.aws.amazon.com/elasticache/latest/red-ug/AutoFailover.html"},
		},
	},
	{
		ID:         "saa-002",
		TrackID:    "aws-saa",
		Domain:     "Design Cost-Optimized Architectures",
		Difficulty: DifficultyEasy,
		StemMd: "A development team runs multiple EC2 instances for testing that are only needed during " +
			"business hours (9 AM to 6 PM, Monday through Friday).\n\n" +
			"What is the MOST cost-effective way to manage these instances?",
		Choices: []Choice{
			{ID: "A", TextMd: "Use Reserved Instances with 1-year term"},
			{ID: "B", TextMd: "Use Spot Instances"},
			{ID: "C", TextMd: "Use AWS Lambda instead"},
			{ID: "D", TextMd: "Schedule instances to start/stop using EventBridge and Lambda"},
		},
		CorrectChoiceIDs: []string{"D"},
		ExplanationMd: "**Scheduling instances** with EventBridge and Lambda means paying only for the hours " +
			"actually used (~45 of 168 weekly hours, saving about 73%). Reserved Instances do not suit " +
			"intermittent usage, Spot Instances can be interrupted, and Lambda does not fit long-running " +
			"development workloads.",
		References: []Reference{
			{Label: "EventBridge Scheduled Rules", URL: "https://docs.aws.amazon.com/eventbridge/latest/userguide/scheduled-events.html"},
		},
	},
	{
		ID:         "saa-003",
		TrackID:    "aws-saa",
		Domain:     "Design Secure Applications and Architectures",
		Difficulty: DifficultyHard,
		StemMd: "A financial services company needs to encrypt data at rest and in transit for a web " +
			"application using an ALB, EC2 instances in private subnets, RDS MySQL, and S3. The company " +
			"requires automatic key rotation and audit logs of all key usage.\n\n" +
			"Which combination of services would meet these requirements? (Select TWO)",
		Choices: []Choice{
			{ID: "A", TextMd: "Use AWS KMS Customer Managed Keys for S3 and RDS encryption"},
			{ID: "B", TextMd: "Use AWS KMS AWS Managed Keys for all encryption"},
			{ID: "C", TextMd: "Enable CloudTrail logging for KMS key usage auditing"},
			{ID: "D", TextMd: "Use ACM certificates on ALB and configure SSL/TLS on EC2"},
			{ID: "E", TextMd: "Use self-signed certificates for cost optimization"},
		},
		CorrectChoiceIDs: []string{"A", "C"},
		ExplanationMd: "**Customer Managed Keys** provide rotation control and detailed key policies; " +
			"**CloudTrail** captures every KMS API call for auditing. AWS Managed Keys cannot be rotated " +
			"on demand, and certificates alone do not address key rotation for data at rest.",
		References: []Reference{
			{Label: "KMS Key Rotation", URL: "https://docs.aws.amazon.com/kms/latest/developerguide/rotating-keys.html"},
			{Label: "CloudTrail KMS Events", URL: "https://docs.aws.amazon.com/kms/latest/developerguide/logging-using-cloudtrail.html"},
		},
	},
	{
		ID:         "saa-004",
		TrackID:    "aws-saa",
		Domain:     "Design High-Performing Architectures",
		Difficulty: DifficultyMedium,
		StemMd: "A media streaming application with variable daily traffic uses a Classic Load Balancer, a " +
			"fixed number of EC2 instances, and MySQL on EC2. Users report slow response times during peak " +
			"hours.\n\nWhich improvements would provide the BEST performance optimization? (Select TWO)",
		Choices: []Choice{
			{ID: "A", TextMd: "Replace Classic Load Balancer with Application Load Balancer"},
			{ID: "B", TextMd: "Implement Auto Scaling Groups with target tracking policies"},
			{ID: "C", TextMd: "Migrate MySQL to Amazon RDS with Multi-AZ"},
			{ID: "D", TextMd: "Add CloudFront CDN for static content delivery"},
			{ID: "E", TextMd: "Increase EC2 instance sizes to handle peak load"},
		},
		CorrectChoiceIDs: []string{"B", "D"},
		ExplanationMd: "**Auto Scaling Groups** absorb traffic spikes and cut costs off-peak; **CloudFront** " +
			"offloads the origin and serves media from edge locations. Swapping the load balancer or " +
			"adding Multi-AZ improves availability, not peak-hour performance, and larger instances do " +
			"not address variable traffic.",
		References: []Reference{
			{Label: "Auto Scaling Target Tracking", URL: "https://docs.aws.amazon.com/autoscaling/ec2/userguide/as-scaling-target-tracking.html"},
			{Label: "CloudFront Performance", URL: "https://docs.aws.amazon.com/AmazonCloudFront/latest/DeveloperGuide/Introduction.html"},
		},
	},
	{
		ID:         "saa-005",
		TrackID:    "aws-saa",
		Domain:     "Design Resilient Architectures",
		Difficulty: DifficultyEasy,
		StemMd: "A company wants to ensure their web application remains available even if an entire AWS " +
			"Availability Zone becomes unavailable.\n\n" +
			"Which design approach would provide the HIGHEST availability?",
		Choices: []Choice{
			{ID: "A", TextMd: "Deploy application in a single AZ with automatic backups"},
			{ID: "B", TextMd: "Deploy application across multiple AZs in the same region"},
			{ID: "C", TextMd: "Deploy application in multiple regions with Route 53 failover"},
			{ID: "D", TextMd: "Use Reserved Instances to guarantee capacity"},
		},
		CorrectChoiceIDs: []string{"C"},
		ExplanationMd: "**Multi-region deployment with Route 53 failover** protects against AZ failures, " +
			"region-wide outages, and connectivity issues via DNS-level health checks. Multi-AZ in one " +
			"region is good but still vulnerable to regional problems.",
		References: []Reference{
			{Label: "Route 53 Health Checks", URL: "https://docs.aws.amazon.com/Route53/latest/DeveloperGuide/dns-failover.html"},
		},
	},
	{
		ID:         "cp-001",
		TrackID:    "aws-cp",
		Domain:     "Cloud Concepts",
		Difficulty: DifficultyEasy,
		StemMd: "Which of the following is a benefit of moving to the AWS Cloud compared to an on-premises " +
			"data center?",
		Choices: []Choice{
			{ID: "A", TextMd: "Trade variable expense for capital expense"},
			{ID: "B", TextMd: "Trade capital expense for variable expense"},
			{ID: "C", TextMd: "Guaranteed fixed monthly costs"},
			{ID: "D", TextMd: "Full physical control over hardware"},
		},
		CorrectChoiceIDs: []string{"B"},
		ExplanationMd: "One of the six advantages of cloud computing is trading capital expense for variable " +
			"expense: instead of investing in data centers before knowing how they will be used, you pay " +
			"only when you consume resources.",
	},
	{
		ID:         "cp-002",
		TrackID:    "aws-cp",
		Domain:     "AWS Services",
		Difficulty: DifficultyEasy,
		StemMd:     "Which AWS service provides object storage with virtually unlimited capacity?",
		Choices: []Choice{
			{ID: "A", TextMd: "Amazon EBS"},
			{ID: "B", TextMd: "Amazon EFS"},
			{ID: "C", TextMd: "Amazon S3"},
			{ID: "D", TextMd: "AWS Storage Gateway"},
		},
		CorrectChoiceIDs: []string{"C"},
		ExplanationMd: "**Amazon S3** is AWS's object storage service. EBS provides block storage for EC2, " +
			"EFS is a shared file system, and Storage Gateway bridges on-premises storage with the cloud.",
	},
	{
		ID:         "cp-003",
		TrackID:    "aws-cp",
		Domain:     "Security & Compliance",
		Difficulty: DifficultyMedium,
		StemMd: "Under the AWS shared responsibility model, which of the following is a responsibility of " +
			"the customer?",
		Choices: []Choice{
			{ID: "A", TextMd: "Physical security of data centers"},
			{ID: "B", TextMd: "Patching the hypervisor"},
			{ID: "C", TextMd: "Configuring security groups"},
			{ID: "D", TextMd: "Hardware disposal"},
		},
		CorrectChoiceIDs: []string{"C"},
		ExplanationMd: "Customers are responsible for security **in** the cloud, which includes network " +
			"configuration such as security groups. AWS handles physical security, hypervisor patching, " +
			"and hardware lifecycle.",
	},
	{
		ID:         "cp-004",
		TrackID:    "aws-cp",
		Domain:     "Billing & Pricing",
		Difficulty: DifficultyEasy,
		StemMd:     "Which AWS tool allows you to set custom alerts when your costs exceed a threshold?",
		Choices: []Choice{
			{ID: "A", TextMd: "AWS Cost Explorer"},
			{ID: "B", TextMd: "AWS Budgets"},
			{ID: "C", TextMd: "AWS Pricing Calculator"},
			{ID: "D", TextMd: "AWS Trusted Advisor"},
		},
		CorrectChoiceIDs: []string{"B"},
		ExplanationMd: "**AWS Budgets** sends alerts when actual or forecasted cost exceeds a configured " +
			"threshold. Cost Explorer visualizes historical spend, and the Pricing Calculator estimates " +
			"costs before deployment.",
	},
	{
		ID:         "cp-005",
		TrackID:    "aws-cp",
		Domain:     "Cloud Concepts",
		Difficulty: DifficultyMedium,
		StemMd: "A company wants to run workloads in AWS while keeping some applications in its own data " +
			"center. Which cloud deployment model does this describe?",
		Choices: []Choice{
			{ID: "A", TextMd: "Public cloud"},
			{ID: "B", TextMd: "Private cloud"},
			{ID: "C", TextMd: "Hybrid cloud"},
			{ID: "D", TextMd: "Multi-cloud"},
		},
		CorrectChoiceIDs: []string{"C"},
		ExplanationMd: "Running some workloads in AWS and some on-premises, with connectivity between them, " +
			"is the **hybrid** deployment model.",
	},
	{
		ID:         "devops-001",
		TrackID:    "aws-devops",
		Domain:     "SDLC Automation",
		Difficulty: DifficultyMedium,
		StemMd: "A team wants every push to the main branch to build, test, and deploy automatically to a " +
			"staging environment.\n\nWhich AWS service combination achieves this with the LEAST operational overhead?",
		Choices: []Choice{
			{ID: "A", TextMd: "CodePipeline with CodeBuild and CodeDeploy"},
			{ID: "B", TextMd: "A cron job on a dedicated EC2 build host"},
			{ID: "C", TextMd: "CloudFormation StackSets triggered manually"},
			{ID: "D", TextMd: "Elastic Beanstalk with manual version uploads"},
		},
		CorrectChoiceIDs: []string{"A"},
		ExplanationMd: "**CodePipeline** orchestrates the flow, **CodeBuild** runs build and tests, and " +
			"**CodeDeploy** handles the staged rollout — all managed services with no build host to maintain.",
	},
	{
		ID:         "devops-002",
		TrackID:    "aws-devops",
		Domain:     "Monitoring and Logging",
		Difficulty: DifficultyHard,
		StemMd: "An operations team needs to aggregate application logs from hundreds of containers, search " +
			"them in near real time, and alarm on error-rate spikes.\n\nWhich approach is MOST appropriate?",
		Choices: []Choice{
			{ID: "A", TextMd: "Write logs to instance disks and rotate them nightly to S3"},
			{ID: "B", TextMd: "Stream logs to CloudWatch Logs with metric filters and alarms"},
			{ID: "C", TextMd: "Email log excerpts to the on-call engineer"},
			{ID: "D", TextMd: "Query raw S3 log objects with Athena once per day"},
		},
		CorrectChoiceIDs: []string{"B"},
		ExplanationMd: "**CloudWatch Logs** ingests container logs centrally; metric filters turn error " +
			"patterns into metrics that alarms can fire on within minutes. Disk rotation and daily Athena " +
			"queries are not near real time.",
	},
	{
		ID:         "cka-001",
		TrackID:    "k8s-cka",
		Domain:     "Workloads & Scheduling",
		Difficulty: DifficultyMedium,
		StemMd: "A Deployment's Pods must run only on nodes labeled `disktype=ssd`.\n\n" +
			"Which mechanism enforces this?",
		Choices: []Choice{
			{ID: "A", TextMd: "A nodeSelector in the Pod template"},
			{ID: "B", TextMd: "A PodDisruptionBudget"},
			{ID: "C", TextMd: "A ResourceQuota on the namespace"},
			{ID: "D", TextMd: "A liveness probe"},
		},
		CorrectChoiceIDs: []string{"A"},
		ExplanationMd: "A **nodeSelector** (or a node affinity rule) constrains scheduling to nodes carrying " +
			"the matching label. The other mechanisms control disruption, quota, and health — not placement.",
	},
	{
		ID:         "cka-002",
		TrackID:    "k8s-cka",
		Domain:     "Troubleshooting",
		Difficulty: DifficultyHard,
		StemMd: "A Pod is stuck in `CrashLoopBackOff`. Which TWO commands are MOST useful as first " +
			"diagnostic steps? (Select TWO)",
		Choices: []Choice{
			{ID: "A", TextMd: "kubectl logs <pod> --previous"},
			{ID: "B", TextMd: "kubectl describe pod <pod>"},
			{ID: "C", TextMd: "kubectl delete node <node>"},
			{ID: "D", TextMd: "kubectl scale deployment <name> --replicas=0"},
		},
		CorrectChoiceIDs: []string{"A", "B"},
		ExplanationMd: "`kubectl logs --previous` shows why the last container instance exited, and " +
			"`kubectl describe pod` reveals events such as failed probes or OOM kills. Deleting nodes or " +
			"scaling to zero destroys evidence without diagnosing anything.",
	},
}

var defaultExams = []PracticeExam{
	{
		ID:          "cp-exam-1",
		TrackID:     "aws-cp",
		Title:       "Cloud Practitioner Final Exam 1",
		Description: "Comprehensive AWS Cloud Practitioner certification practice exam",
		Level:       "intermediate",
		Domains: []string{
			"Cloud Concepts", "AWS Services", "Security & Compliance", "Billing & Pricing",
		},
		Difficulties: []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard},
		Count:        65,
		Timed:        true,
	},
	{
		ID:          "saa-exam-1",
		TrackID:     "aws-saa",
		Title:       "Solutions Architect Final Exam 1",
		Description: "Comprehensive AWS Solutions Architect Associate practice exam",
		Level:       "intermediate",
		Domains: []string{
			"Design Resilient Architectures",
			"Design High-Performing Architectures",
			"Design Secure Applications and Architectures",
			"Design Cost-Optimized Architectures",
		},
		Difficulties: []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard},
		Count:        65,
		Timed:        true,
	},
	{
		ID:           "saa-domain-security",
		TrackID:      "aws-saa",
		Title:        "Security Deep Dive",
		Description:  "Focused drill on secure application and architecture design",
		Level:        "advanced",
		Domains:      []string{"Design Secure Applications and Architectures"},
		Difficulties: []Difficulty{DifficultyMedium, DifficultyHard},
		Count:        25,
		Timed:        false,
	},
	{
		ID:          "devops-exam-1",
		TrackID:     "aws-devops",
		Title:       "DevOps Professional Final Exam 1",
		Description: "Comprehensive AWS DevOps Engineer Professional practice exam",
		Level:       "advanced",
		Domains: []string{
			"SDLC Automation", "Configuration Management", "Monitoring and Logging", "Policies and Standards",
		},
		Difficulties: []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard},
		Count:        75,
		Timed:        true,
	},
	{
		ID:          "cka-exam-1",
		TrackID:     "k8s-cka",
		Title:       "CKA Final Exam 1",
		Description: "Comprehensive Certified Kubernetes Administrator practice exam",
		Level:       "advanced",
		Domains: []string{
			"Cluster Architecture", "Workloads & Scheduling", "Services & Networking", "Storage", "Troubleshooting",
		},
		Difficulties: []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard},
		Count:        15,
		Timed:        true,
	},
}
